package admin

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrSelfTarget        = errors.New("admins cannot target their own account")
	ErrInvalidTransition = errors.New("invalid state transition")
)
