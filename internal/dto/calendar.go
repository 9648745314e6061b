package dto

// Slot is one bookable hour in a location's day. Start and End are
// RFC3339 strings with an explicit zone offset.
type Slot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// BusyInterval is a raw busy window from the location's calendar.
type BusyInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilityResponse lists the day's slots for a location: the full
// annotated grid, the bookable subset, and the raw busy windows.
type AvailabilityResponse struct {
	Date           string         `json:"date"`
	Location       string         `json:"location"`
	AllSlots       []Slot         `json:"allSlots"`
	AvailableSlots []Slot         `json:"availableSlots"`
	BusySlots      []BusyInterval `json:"busySlots"`
}

// AvailabilityRequest is the POST body form of the availability query.
type AvailabilityRequest struct {
	Date     string `json:"date" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// CreateEventRequest is the payload for booking a calendar appointment.
type CreateEventRequest struct {
	Summary     string `json:"summary" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location" binding:"required"`
	Start       string `json:"start" binding:"required"`
}

// EventResponse echoes the created calendar event.
type EventResponse struct {
	ID       string `json:"id"`
	HTMLLink string `json:"htmlLink"`
	Summary  string `json:"summary"`
	Location string `json:"location"`
	Start    string `json:"startTime"`
	End      string `json:"endTime"`
}
