package pricing

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidNights = errors.New("nights must be a positive integer")

// Breakdown is the price decomposition stored on a booking.
type Breakdown struct {
	Subtotal    float64 `json:"subtotal"`
	CleaningFee float64 `json:"cleaning_fee"`
	ServiceFee  float64 `json:"service_fee"`
	Total       float64 `json:"total"`
}

// Nights returns the stay length for [checkIn, checkOut) as the ceiling of
// the span in whole days. Zero or negative spans yield 0.
func Nights(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// Quote computes subtotal, service fee and total. The service fee is
// rounded half-up to the nearest currency unit.
func Quote(pricePerNight float64, nights int, cleaningFee, serviceFeeRate float64) (Breakdown, error) {
	if nights < 1 {
		return Breakdown{}, ErrInvalidNights
	}

	subtotal := pricePerNight * float64(nights)
	serviceFee := math.Round(subtotal * serviceFeeRate)

	return Breakdown{
		Subtotal:    subtotal,
		CleaningFee: cleaningFee,
		ServiceFee:  serviceFee,
		Total:       subtotal + cleaningFee + serviceFee,
	}, nil
}
