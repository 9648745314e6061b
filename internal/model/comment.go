package model

// SimpleComment is an anonymous free-text comment on a resource.
type SimpleComment struct {
	Base
	Comment    string `gorm:"type:text;not null" json:"comment"`
	ResourceID string `gorm:"column:resource_id;size:36;not null" json:"resourceId"`
}

func (SimpleComment) TableName() string { return "simple_comments" }
