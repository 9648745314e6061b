package model

// Meditation, Exercise and Technique are the three self-help resource
// catalogues. They share a shape but live in separate tables; IDs are
// caller-supplied strings so seed data stays stable across environments.

type Meditation struct {
	ID          string `gorm:"size:36;primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Brief       string `gorm:"type:text" json:"brief"`
	Description string `gorm:"type:text" json:"description"`
	Src         string `gorm:"size:500" json:"src"`
}

func (Meditation) TableName() string { return "meditations" }

type Exercise struct {
	ID          string `gorm:"size:36;primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Brief       string `gorm:"type:text" json:"brief"`
	Description string `gorm:"type:text" json:"description"`
	Src         string `gorm:"size:500" json:"src"`
}

func (Exercise) TableName() string { return "exercises" }

type Technique struct {
	ID          string `gorm:"size:36;primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Brief       string `gorm:"type:text" json:"brief"`
	Description string `gorm:"type:text" json:"description"`
	Src         string `gorm:"size:500" json:"src"`
}

func (Technique) TableName() string { return "techniques" }
