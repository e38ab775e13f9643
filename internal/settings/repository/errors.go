package repository

import "errors"

var (
	ErrNotFound       = errors.New("settings not found")
	ErrFailedToGet    = errors.New("failed to get settings")
	ErrFailedToList   = errors.New("failed to list settings")
	ErrFailedToUpsert = errors.New("failed to upsert settings")
	ErrFailedToUpdate = errors.New("failed to update settings")
)
