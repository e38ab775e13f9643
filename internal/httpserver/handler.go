package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"calendar-status-sync/internal/middleware"
	"calendar-status-sync/internal/model"
	reconcileHTTP "calendar-status-sync/internal/reconcile/delivery/http"
	settingsHTTP "calendar-status-sync/internal/settings/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the admin API under /api/v1.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.adminAPIKey)

	if srv.adminAPIKey == "" {
		srv.l.Warnf(ctx, "httpserver.registerDomainRoutes: admin.api_key is empty, /api/v1 will reject every request")
	}

	if srv.reconcileHandler != nil {
		reconcileHTTP.RegisterRoutes(api, srv.reconcileHandler, mw)
		srv.l.Infof(ctx, "Reconcile route registered at POST /api/v1/reconcile")
	}

	if srv.settingsHandler != nil {
		settingsHTTP.RegisterRoutes(api, srv.settingsHandler, mw)
		srv.l.Infof(ctx, "Settings routes registered at /api/v1/users/:email/settings")
	}
}
