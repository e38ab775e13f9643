package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	reconcileHTTP "calendar-status-sync/internal/reconcile/delivery/http"
	settingsHTTP "calendar-status-sync/internal/settings/delivery/http"
	"calendar-status-sync/pkg/log"
)

// ReadinessFunc reports whether a dependency can serve traffic.
type ReadinessFunc func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	adminAPIKey string
	ready       ReadinessFunc

	// Domains
	reconcileHandler reconcileHTTP.Handler
	settingsHandler  settingsHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	AdminAPIKey string

	// Ready is probed by /ready. Nil means always ready.
	Ready ReadinessFunc

	ReconcileHandler reconcileHTTP.Handler
	SettingsHandler  settingsHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		adminAPIKey:      cfg.AdminAPIKey,
		ready:            cfg.Ready,
		reconcileHandler: cfg.ReconcileHandler,
		settingsHandler:  cfg.SettingsHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
