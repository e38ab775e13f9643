package http

import (
	"github.com/gin-gonic/gin"

	"calendar-status-sync/internal/middleware"
)

// RegisterRoutes maps the reconcile endpoint onto rg behind the admin key.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/reconcile", mw.Auth(), h.Reconcile)
}
