package dto

// CreateEnrollmentRequest is the payload for enrolling in an activity.
// Field-level validation beyond presence (email shape, phone digits)
// happens in the service layer so rejections carry stable codes.
type CreateEnrollmentRequest struct {
	ActivityCode string `json:"activityCode" binding:"required"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required"`
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
}

// EnrollmentResponse is the stored enrollment echoed back to the caller.
type EnrollmentResponse struct {
	ID           string `json:"id"`
	ActivityCode string `json:"activityCode"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
}

// CreateEnrollmentResponse is the stored enrollment plus the activity's
// enrollment count recomputed after the admission committed.
type CreateEnrollmentResponse struct {
	EnrollmentResponse
	NumOfEnrollments int `json:"numOfEnrollments"`
}

// EnrollmentWithActivity joins an enrollment to its activity details,
// used by the per-email listing and the calendar feed.
type EnrollmentWithActivity struct {
	EnrollmentResponse
	ActivityName string `json:"activityName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Type         string `json:"type"`
}
