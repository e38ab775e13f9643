package http

import (
	"github.com/gin-gonic/gin"

	"calendar-status-sync/pkg/response"
)

// Detail godoc
// @Summary     Get user settings
// @Description Returns the stored settings of a user. Tokens are reported as has_* flags only.
// @Tags        Settings
// @Produce     json
// @Security    ApiKeyAuth
// @Param       email path     string true "User email"
// @Success     200   {object} settingsResp
// @Failure     400   {object} response.Resp "Bad Request"
// @Failure     404   {object} response.Resp "Not Found"
// @Failure     500   {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{email}/settings [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Get(ctx, c.Param("email"))
	if err != nil {
		h.l.Warnf(ctx, "settings.delivery.http.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSettingsResp(s))
}

// Update godoc
// @Summary     Update user settings
// @Description Partially updates a user's settings, creating the user when missing.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       email path     string    true "User email"
// @Param       body  body     updateReq true "Fields to update"
// @Success     200   {object} settingsResp
// @Failure     400   {object} response.Resp "Bad Request"
// @Failure     500   {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{email}/settings [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.Update(ctx, req.Email, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "settings.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSettingsResp(s))
}
