package calendar

import "errors"

var (
	// ErrAuthExpired means the stored calendar token can no longer be used.
	ErrAuthExpired = errors.New("calendar: authorization expired")
	// ErrUnknownProvider is returned by NewProvider for unsupported names.
	ErrUnknownProvider = errors.New("calendar: unknown provider")
)
