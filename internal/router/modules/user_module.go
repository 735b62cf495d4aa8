package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/twotier/userapi/internal/interface/http"
	"github.com/twotier/userapi/internal/interface/middleware"
)

// UserModule wires the user CRUD routes:
// GET /users, POST /users, GET/PUT/DELETE /users/:id
// Mutations carry a per-IP rate limit when redis is configured.
type UserModule struct {
	Handler *handlers.UserHandler
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/users", m.Handler.List)
	rg.POST("/users", writeLimiter, m.Handler.Create)
	rg.GET("/users/:id", m.Handler.Get)
	rg.PUT("/users/:id", writeLimiter, m.Handler.Update)
	rg.DELETE("/users/:id", writeLimiter, m.Handler.Delete)
}
