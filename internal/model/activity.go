package model

// Activity is a bookable group session at one of the hub locations.
// Capacity maps to the legacy "availability" column: it is the maximum
// number of enrollments, not the remaining headroom.
type Activity struct {
	Base
	Code        string `gorm:"uniqueIndex;size:50;not null" json:"code"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Date        string `gorm:"type:date;not null" json:"date"`
	Time        string `gorm:"size:50;not null" json:"time"`
	Location    string `gorm:"size:100;not null" json:"location"`
	Type        string `gorm:"size:50;not null" json:"type"`
	Capacity    int    `gorm:"column:availability;not null;default:0" json:"availability"`
	Description string `gorm:"type:text" json:"description"`

	// Legacy counter column. Written as zero on create and never read;
	// enrollment counts are derived from the enrollments table.
	NumOfEnrollments int `gorm:"column:num_of_enrollments;not null;default:0" json:"-"`
}

func (Activity) TableName() string { return "activities" }
