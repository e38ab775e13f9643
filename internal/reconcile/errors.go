package reconcile

import "errors"

var (
	ErrNoUsers     = errors.New("no users to reconcile")
	ErrStatusSync  = errors.New("status update failed")
	ErrReminder    = errors.New("reminder delivery failed")
	ErrEventsFetch = errors.New("calendar fetch failed")
)
