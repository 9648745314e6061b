package repository

import "gorm.io/gorm"

// Repositories bundles every repository for one-shot wiring in main.
type Repositories struct {
	Activity   ActivityRepository
	Enrollment EnrollmentRepository
	Address    AddressRepository
	Resource   ResourceRepository
	Rating     RatingRepository
	Comment    CommentRepository
}

// NewRepositories builds all repositories over a shared connection.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Activity:   NewActivityRepository(db),
		Enrollment: NewEnrollmentRepository(db),
		Address:    NewAddressRepository(db),
		Resource:   NewResourceRepository(db),
		Rating:     NewRatingRepository(db),
		Comment:    NewCommentRepository(db),
	}
}
