package dto

// StatisticsResponse is the aggregate dashboard payload.
type StatisticsResponse struct {
	ResourceRatings  []ResourceRatingStat  `json:"resourceRatings"`
	EnrollmentTrends []EnrollmentTrendStat `json:"enrollmentTrends"`
	CommentsByType   []CommentTypeStat     `json:"commentsByType"`
}

// ResourceRatingStat is the rating aggregate for one resource.
type ResourceRatingStat struct {
	ResourceID    string  `json:"resourceId"`
	Title         string  `json:"title"`
	Type          string  `json:"type"`
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}

// EnrollmentTrendStat counts enrollments per activity month.
type EnrollmentTrendStat struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// CommentTypeStat counts comments per resource catalogue.
type CommentTypeStat struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}
