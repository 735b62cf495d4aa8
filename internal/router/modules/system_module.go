package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/twotier/userapi/internal/interface/http"
)

// SystemModule wires the instance-level routes: GET /, GET /health, GET /info.
// /health is what the traffic distributor polls, so it stays unauthenticated
// and unthrottled.
type SystemModule struct {
	Handler *handlers.SystemHandler
}

func NewSystemModule(h *handlers.SystemHandler) *SystemModule {
	return &SystemModule{Handler: h}
}

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Home)
	rg.GET("/health", m.Handler.Health)
	rg.GET("/info", m.Handler.Info)
}
