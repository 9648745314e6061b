package dto

// ResourceResponse is the common view over meditations, exercises and
// techniques, annotated with its catalogue type.
type ResourceResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Brief       string `json:"brief"`
	Description string `json:"description"`
	Src         string `json:"src"`
}

// GroupedResources is the catalogue listing split by type, the shape
// the resource library page consumes.
type GroupedResources struct {
	Meditations []ResourceResponse `json:"meditations"`
	Exercises   []ResourceResponse `json:"exercises"`
	Techniques  []ResourceResponse `json:"techniques"`
}

// CreateRatingRequest is an anonymous star rating for a resource.
type CreateRatingRequest struct {
	ResourceID string `json:"resourceId" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
}

// RatingSummary aggregates a resource's ratings.
type RatingSummary struct {
	ResourceID    string  `json:"resourceId"`
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}

// CreateCommentRequest is an anonymous comment on a resource.
type CreateCommentRequest struct {
	ResourceID string `json:"resourceId" binding:"required"`
	Comment    string `json:"comment" binding:"required"`
}

// CommentResponse is a stored comment.
type CommentResponse struct {
	ID         string `json:"id"`
	ResourceID string `json:"resourceId"`
	Comment    string `json:"comment"`
}
