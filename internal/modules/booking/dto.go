package booking

import "time"

type CreateBookingRequest struct {
	ListingID  int64   `json:"listing_id" binding:"required"`
	CheckIn    string  `json:"check_in" binding:"required"`
	CheckOut   string  `json:"check_out" binding:"required"`
	BoatName   string  `json:"boat_name"`
	BoatLength float64 `json:"boat_length"`
}

type TransitionRequest struct {
	Action             string `json:"action" binding:"required"`
	CancellationReason string `json:"cancellation_reason"`
}

// CalendarEntry is one unavailable range on a listing's calendar, either a
// held booking or a host block.
type CalendarEntry struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Source string    `json:"source"` // "booking" or "blocked"
}
