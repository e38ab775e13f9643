package http

import (
	"errors"
	"net/http"

	"calendar-status-sync/internal/settings"
	pkgErrors "calendar-status-sync/pkg/errors"
)

// mapError translates use-case errors into HTTP errors. Unknown errors are 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, settings.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, settings.ErrInvalidEmail),
		errors.Is(err, settings.ErrInvalidOverride),
		errors.Is(err, settings.ErrInvalidMapping),
		errors.Is(err, settings.ErrStatusTextTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
