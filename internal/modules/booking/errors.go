package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("booking not found")
	ErrListingNotFound   = errors.New("listing not found")
	ErrNotBookable       = errors.New("listing is not bookable")
	ErrOwnListing        = errors.New("hosts cannot book their own listing")
	ErrMinimumStay       = errors.New("stay is shorter than the listing minimum")
	ErrNotAvailable      = errors.New("dates are not available")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
)
