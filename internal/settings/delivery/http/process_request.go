package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "calendar-status-sync/pkg/errors"
)

// processUpdateReq binds the JSON body and the :email path param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Email = c.Param("email")
	if req.Email == "" {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	return req, nil
}
