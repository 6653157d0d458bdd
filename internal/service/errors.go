package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidRevisionID   = errors.New("invalid revision id")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrPublishConflict is returned when every publish attempt lost the
	// race for the next revision number.
	ErrPublishConflict = errors.New("site config publish kept conflicting with concurrent publishers")
)
