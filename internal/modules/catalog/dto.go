package catalog

type CreateListingRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description"`

	Address string  `json:"address" binding:"required"`
	City    string  `json:"city" binding:"required"`
	State   string  `json:"state" binding:"required"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`

	MaxBoatLength float64 `json:"max_boat_length" binding:"required,gt=0"`
	BoatSize      string  `json:"boat_size" binding:"required"`
	Depth         float64 `json:"depth"`
	Width         float64 `json:"width"`

	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
	CleaningFee   float64 `json:"cleaning_fee"`

	InstantBook bool `json:"instant_book"`
	MinimumStay int  `json:"minimum_stay"`
}

type UpdateListingRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`

	MaxBoatLength *float64 `json:"max_boat_length"`
	BoatSize      *string  `json:"boat_size"`
	Depth         *float64 `json:"depth"`
	Width         *float64 `json:"width"`

	PricePerNight *float64 `json:"price_per_night"`
	CleaningFee   *float64 `json:"cleaning_fee"`

	InstantBook *bool `json:"instant_book"`
	MinimumStay *int  `json:"minimum_stay"`
	IsActive    *bool `json:"is_active"`
}

type BlockDatesRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}
