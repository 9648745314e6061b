package model

// SimpleRating is an anonymous 1-5 star rating of a resource.
type SimpleRating struct {
	Base
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	ResourceID string `gorm:"column:resource_id;size:36;not null" json:"resourceId"`
}

func (SimpleRating) TableName() string { return "simple_ratings" }
