package http

import (
	"github.com/gin-gonic/gin"

	"calendar-status-sync/internal/settings"
	"calendar-status-sync/pkg/log"
)

// Handler is the HTTP delivery for per-user settings administration.
type Handler interface {
	Detail(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc settings.UseCase
}

// New creates a new settings HTTP handler.
func New(l log.Logger, uc settings.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
