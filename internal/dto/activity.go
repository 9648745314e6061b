package dto

// CreateActivityRequest is the payload for registering a new activity.
type CreateActivityRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Capacity    int    `json:"availability" binding:"min=0"`
	Description string `json:"description"`
}

// UpdateActivityRequest carries a partial update; nil fields keep their
// current value.
type UpdateActivityRequest struct {
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Type        *string `json:"type"`
	Capacity    *int    `json:"availability"`
	Description *string `json:"description"`
}

// ActivityResponse is the public view of an activity, with the
// enrollment count derived from the ledger and the location's address
// joined in when one is on file.
type ActivityResponse struct {
	Code             string           `json:"code"`
	Name             string           `json:"name"`
	Date             string           `json:"date"`
	Time             string           `json:"time"`
	Location         string           `json:"location"`
	Type             string           `json:"type"`
	Capacity         int              `json:"availability"`
	Description      string           `json:"description,omitempty"`
	NumOfEnrollments int              `json:"numOfEnrollments"`
	Address          *AddressResponse `json:"address,omitempty"`
}

// AddressResponse is the street address of a hub location.
type AddressResponse struct {
	AddressLine string `json:"addressLine"`
	Suburb      string `json:"suburb"`
	State       string `json:"state"`
	Postcode    string `json:"postcode"`
	Country     string `json:"country"`
}
