package services

import "errors"

// Common service errors
var (
	ErrInvalidFormat = errors.New("invalid report format")
)
