package handler

import (
	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/response"
	"blogapi/src/app/middleware"
	"blogapi/src/core/dto"
	"blogapi/src/core/usecase"
)

// PostHandler handles post endpoints.
type PostHandler struct {
	postService *usecase.PostService
}

func NewPostHandler(postService *usecase.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.FindAll(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}
	post, err := h.postService.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, post)
}

func (h *PostHandler) GetByTitle(c *gin.Context) {
	title := c.Param("title")
	post, err := h.postService.FindByTitle(c.Request.Context(), title)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, post)
}

func (h *PostHandler) Create(c *gin.Context) {
	ownerID, ok := parseUserIDQuery(c)
	if !ok {
		return
	}
	var req dto.PostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	post, err := h.postService.Save(c.Request.Context(), &req, ownerID)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}
	requester := middleware.GetRequesterEmail(c)

	if err := h.postService.DeleteByID(c.Request.Context(), id, requester); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}
