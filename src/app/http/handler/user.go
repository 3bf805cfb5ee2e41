package handler

import (
	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/response"
	"blogapi/src/app/middleware"
	"blogapi/src/core/dto"
	"blogapi/src/core/usecase"
)

// UserHandler handles account endpoints.
type UserHandler struct {
	userService *usecase.UserService
}

func NewUserHandler(userService *usecase.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register is the one unauthenticated mutating endpoint; a new visitor has
// no credentials yet.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, user)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.FindAll(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	user, err := h.userService.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, user)
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")
	user, err := h.userService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	requester := middleware.GetRequesterEmail(c)

	if err := h.userService.DeleteByID(c.Request.Context(), id, requester); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}
