package http

import (
	"github.com/gin-gonic/gin"

	"calendar-status-sync/internal/reconcile"
	"calendar-status-sync/pkg/log"
)

// Handler is the HTTP delivery for on-demand reconciliation.
type Handler interface {
	Reconcile(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc reconcile.UseCase
}

// New creates a new reconcile HTTP handler.
func New(l log.Logger, uc reconcile.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
