package services

import "errors"

// Common service errors
var (
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidState       = errors.New("invalid state transition")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
