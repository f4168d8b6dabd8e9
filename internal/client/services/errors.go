package services

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotAuthenticated = errors.New("not authenticated, please log in again")
	ErrEventsFailed     = errors.New("failed to load events")
)
