package payment

import "errors"

var (
	ErrValidation     = errors.New("invalid payment request")
	ErrNotFound       = errors.New("payment session not found")
	ErrBookingGone    = errors.New("booking not found")
	ErrForbidden      = errors.New("not allowed to pay for this booking")
	ErrNotPayable     = errors.New("booking is not payable")
	ErrAlreadyPaid    = errors.New("booking is already paid")
	ErrUnknownSession = errors.New("unknown payment session reference")
)
