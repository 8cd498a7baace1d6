package catalog

import "errors"

var (
	ErrValidation = errors.New("invalid listing data")
	ErrNotFound   = errors.New("listing not found")
	ErrForbidden  = errors.New("not allowed to manage this listing")
	ErrHostOnly   = errors.New("host account required")
)
