package auth

import "errors"

var (
	ErrValidation         = errors.New("invalid auth request")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSuspended          = errors.New("account is suspended")
	ErrNotFound           = errors.New("user not found")
)
