package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/twotier/userapi/internal/application"
	"github.com/twotier/userapi/internal/domain/repository"
	"github.com/twotier/userapi/pkg/response"
	"github.com/twotier/userapi/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email,max=100"`
}

type updateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Email *string `json:"email" binding:"omitempty,email,max=100"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "list users")
		return
	}
	response.JSON(c, http.StatusOK, users, "users", map[string]any{"count": len(users)})
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), userapp.CreateUserInput{Name: req.Name, Email: req.Email})
	if err != nil {
		h.fail(c, err, "create user")
		return
	}
	response.JSON(c, http.StatusCreated, u, "user created", nil)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "get user")
		return
	}
	response.JSON(c, http.StatusOK, u, "user", nil)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), id, userapp.UpdateUserInput{Name: req.Name, Email: req.Email})
	if err != nil {
		h.fail(c, err, "update user")
		return
	}
	response.JSON(c, http.StatusOK, u, "user updated", nil)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "delete user")
		return
	}
	response.JSON[any](c, http.StatusOK, nil, "user deleted", nil)
}

func (h *UserHandler) userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, "invalid user id", nil)
		return 0, false
	}
	return id, true
}

// fail translates domain errors onto the HTTP taxonomy. Unexpected errors are
// logged with context and answered with a generic message only.
func (h *UserHandler) fail(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, repository.ErrDuplicateEmail):
		response.Fail(c, http.StatusConflict, "email already exists", nil)
	case errors.Is(err, repository.ErrUnavailable):
		response.Fail(c, http.StatusServiceUnavailable, "data store unavailable", nil)
	case errors.Is(err, userapp.ErrInvalidInput), errors.Is(err, userapp.ErrEmptyUpdate):
		response.Fail(c, http.StatusBadRequest, err.Error(), nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).WithFields(logrus.Fields{
				"op":         op,
				"request_id": c.GetString("request_id"),
				"path":       c.Request.URL.Path,
			}).Error("unexpected error")
		}
		response.Fail(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
