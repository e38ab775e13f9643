package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processReconcileReq binds the optional body. An empty body means every user.
func (h *handler) processReconcileReq(c *gin.Context) (reconcileReq, error) {
	var req reconcileReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
