package middleware

import (
	"calendar-status-sync/pkg/log"
)

// Middleware holds the dependencies of the admin API middlewares.
type Middleware struct {
	l      log.Logger
	apiKey string
}

// New returns a Middleware. An empty apiKey makes Auth reject every request.
func New(l log.Logger, apiKey string) Middleware {
	return Middleware{
		l:      l,
		apiKey: apiKey,
	}
}
