package domain

import "time"

type ListingStatus string

const (
	ListingPendingReview ListingStatus = "pending_review"
	ListingActive        ListingStatus = "active"
	ListingPaused        ListingStatus = "paused"
	ListingRejected      ListingStatus = "rejected"
)

type BoatSizeCategory string

const (
	BoatSizeSmall  BoatSizeCategory = "small"  // up to 25 ft
	BoatSizeMedium BoatSizeCategory = "medium" // 25-40 ft
	BoatSizeLarge  BoatSizeCategory = "large"  // 40-60 ft
	BoatSizeYacht  BoatSizeCategory = "yacht"  // 60+ ft
)

type Listing struct {
	ID          int64  `json:"id"`
	HostID      int64  `json:"host_id"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`

	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`

	MaxBoatLength float64          `json:"max_boat_length"`
	BoatSize      BoatSizeCategory `json:"boat_size"`
	Depth         float64          `json:"depth"`
	Width         float64          `json:"width"`

	PricePerNight  float64 `json:"price_per_night"`
	CleaningFee    float64 `json:"cleaning_fee"`
	ServiceFeeRate float64 `json:"service_fee_rate"`

	InstantBook bool `json:"instant_book"`
	MinimumStay int  `json:"minimum_stay"`

	Status   ListingStatus `json:"status"`
	IsActive bool          `json:"is_active"`

	// Derived cache, recomputed from reviews; never authoritative.
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`

	RejectedReason string `json:"rejected_reason,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"index"`

	Host *User `json:"host,omitempty" gorm:"foreignKey:HostID"`
}

// Bookable reports whether new bookings may be created against the listing.
func (l *Listing) Bookable() bool {
	return l.Status == ListingActive && l.IsActive && l.DeletedAt == nil
}

// BlockedDate is a host-blocked half-open range [StartDate, EndDate) during
// which the listing cannot be booked.
type BlockedDate struct {
	ID        int64     `json:"id"`
	ListingID int64     `json:"listing_id" gorm:"index"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
