package report

import "errors"

var (
	ErrValidation = errors.New("invalid report")
	ErrNoTarget   = errors.New("report must name a listing, user, or booking")
)
