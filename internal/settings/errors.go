package settings

import "errors"

// Domain-specific errors for the settings package.
var (
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidOverride   = errors.New("reminder override must be between 0 and 1440 minutes")
	ErrInvalidMapping    = errors.New("status mapping needs calendar text")
	ErrStatusTextTooLong = errors.New("status text exceeds 100 characters")
	ErrUserNotFound      = errors.New("user not found")
)
