package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/twotier/userapi/internal/interface/http"
)

// EventLogModule wires GET /logs for operators.
type EventLogModule struct {
	Handler *handlers.EventLogHandler
}

func NewEventLogModule(h *handlers.EventLogHandler) *EventLogModule {
	return &EventLogModule{Handler: h}
}

func (m *EventLogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/logs", m.Handler.List)
}
