package http

import (
	"github.com/gin-gonic/gin"

	"calendar-status-sync/internal/middleware"
)

// RegisterRoutes maps the settings endpoints onto rg behind the admin key.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	users := rg.Group("/users/:email")
	{
		users.GET("/settings", mw.Auth(), h.Detail)
		users.PUT("/settings", mw.Auth(), h.Update)
	}
}
