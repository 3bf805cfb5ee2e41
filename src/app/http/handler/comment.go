package handler

import (
	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/response"
	"blogapi/src/app/middleware"
	"blogapi/src/core/dto"
	"blogapi/src/core/usecase"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService *usecase.CommentService
}

func NewCommentHandler(commentService *usecase.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.commentService.FindAll(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, comments)
}

func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}
	comment, err := h.commentService.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, comment)
}

func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}
	comments, err := h.commentService.FindByPost(c.Request.Context(), postID)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, comments)
}

func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}
	authorID, ok := parseUserIDQuery(c)
	if !ok {
		return
	}
	var req dto.CommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	comment, err := h.commentService.Save(c.Request.Context(), &req, postID, authorID)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}
	requester := middleware.GetRequesterEmail(c)

	if err := h.commentService.DeleteByID(c.Request.Context(), id, requester); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}
