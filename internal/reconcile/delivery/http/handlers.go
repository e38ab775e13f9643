package http

import (
	"github.com/gin-gonic/gin"

	"calendar-status-sync/internal/reconcile"
	"calendar-status-sync/pkg/response"
)

// Reconcile godoc
// @Summary     Run a reconciliation pass
// @Description Reconciles every stored user, or only the users listed in emails.
// @Tags        Reconcile
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       body body     reconcileReq false "Users to reconcile"
// @Success     200  {object} reconcileResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reconcile [POST]
func (h *handler) Reconcile(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReconcileReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var res reconcile.BatchResult
	if len(req.Emails) == 0 {
		res, err = h.uc.ReconcileAll(ctx)
	} else {
		res, err = h.uc.ReconcileUsers(ctx, req.Emails)
	}
	if err != nil {
		h.l.Errorf(ctx, "reconcile.delivery.http.Reconcile: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReconcileResp(res))
}
