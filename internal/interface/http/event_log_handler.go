package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/twotier/userapi/internal/application"
	"github.com/twotier/userapi/internal/domain/repository"
	"github.com/twotier/userapi/pkg/response"
)

type EventLogHandler struct {
	Svc    *application.EventLogService
	Logger *logrus.Logger
}

func NewEventLogHandler(svc *application.EventLogService, logger *logrus.Logger) *EventLogHandler {
	return &EventLogHandler{Svc: svc, Logger: logger}
}

// List serves GET /logs?limit=&level= with the newest entries first.
func (h *EventLogHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	level := c.Query("level")

	logs, err := h.Svc.Recent(c.Request.Context(), level, limit)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			response.Fail(c, http.StatusServiceUnavailable, "data store unavailable", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("list logs failed")
		}
		response.Fail(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.JSON(c, http.StatusOK, logs, "logs", map[string]any{"count": len(logs)})
}
