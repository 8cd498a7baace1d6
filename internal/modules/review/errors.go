package review

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not_found")
	ErrDuplicate       = errors.New("review already exists for booking")
	ErrBookingNotEnded = errors.New("booking is not completed")
)
