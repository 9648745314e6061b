package model

// Enrollment records one person's place in an activity.
// (activity_code, email) is unique at the database level, which is the
// authoritative guard against double enrollment.
type Enrollment struct {
	Base
	ActivityCode string `gorm:"column:activity_code;size:50;not null;uniqueIndex:unique_enrollment" json:"activityCode"`
	FirstName    string `gorm:"size:100;not null" json:"firstName"`
	LastName     string `gorm:"size:100;not null" json:"lastName"`
	Email        string `gorm:"size:255;not null;uniqueIndex:unique_enrollment" json:"email"`
	PhoneNumber  string `gorm:"size:20;not null" json:"phoneNumber"`
}

func (Enrollment) TableName() string { return "enrollments" }
