package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/twotier/userapi/internal/application"
	"github.com/twotier/userapi/pkg/response"
)

type SystemHandler struct {
	Svc *application.SystemService
}

func NewSystemHandler(svc *application.SystemService) *SystemHandler {
	return &SystemHandler{Svc: svc}
}

func (h *SystemHandler) Home(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.Svc.Home(), "welcome", nil)
}

// Health answers the traffic distributor's polling. 200 keeps the instance in
// rotation, 503 takes it out; the probe itself is bounded so the answer always
// lands inside the distributor's timeout.
func (h *SystemHandler) Health(c *gin.Context) {
	st, ok := h.Svc.Health(c.Request.Context())
	if !ok {
		resp := response.Error[application.HealthStatus](c, http.StatusServiceUnavailable, "health check failed", nil)
		resp.Data = st
		c.JSON(resp.Status, resp)
		return
	}
	response.JSON(c, http.StatusOK, st, "health check passed", nil)
}

func (h *SystemHandler) Info(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.Svc.Info(), "info", nil)
}
