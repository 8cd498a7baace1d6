package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingDeclined  BookingStatus = "declined"
	BookingCompleted BookingStatus = "completed"
)

// Terminal reports whether no further status transition is allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingDeclined || s == BookingCompleted
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
)

type Booking struct {
	ID        int64 `json:"id"`
	ListingID int64 `json:"listing_id" gorm:"index" validate:"required"`
	GuestID   int64 `json:"guest_id" gorm:"index" validate:"required"`
	HostID    int64 `json:"host_id" gorm:"index"`

	// Half-open stay range [CheckIn, CheckOut); checkout day is re-bookable.
	CheckIn  time.Time `json:"check_in" validate:"required"`
	CheckOut time.Time `json:"check_out" validate:"required"`
	Nights   int       `json:"nights"`

	Subtotal    float64 `json:"subtotal"`
	CleaningFee float64 `json:"cleaning_fee"`
	ServiceFee  float64 `json:"service_fee"`
	Total       float64 `json:"total"`

	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentRef    string        `json:"payment_ref,omitempty"`

	BoatName   string  `json:"boat_name,omitempty"`
	BoatLength float64 `json:"boat_length,omitempty"`

	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy        *int64     `json:"cancelled_by,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	Guest   *User    `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
}
