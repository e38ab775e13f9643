package http

import (
	"errors"
	"net/http"

	"calendar-status-sync/internal/reconcile"
	pkgErrors "calendar-status-sync/pkg/errors"
)

// mapError translates use-case errors into HTTP errors. Unknown errors are 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reconcile.ErrNoUsers):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, reconcile.ErrNoUsers.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
