package model

// User is a registered account. Kept minimal; authentication is handled
// upstream of this service.
type User struct {
	Base
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name  string `gorm:"size:255;not null" json:"name"`
}

func (User) TableName() string { return "users" }
