package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	// Not found errors
	ErrProjectNotFound = errors.New("project not found")
	ErrRiskNotFound    = errors.New("risk not found")
	ErrUserNotFound    = errors.New("user not found")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Session errors
	ErrInvalidToken   = errors.New("invalid session token")
	ErrSessionExpired = errors.New("session expired")
)
