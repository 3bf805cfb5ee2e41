package handler

import (
	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/response"
	"blogapi/src/app/middleware"
	"blogapi/src/core/dto"
	"blogapi/src/core/usecase"
)

// AlbumHandler handles album endpoints.
type AlbumHandler struct {
	albumService *usecase.AlbumService
}

func NewAlbumHandler(albumService *usecase.AlbumService) *AlbumHandler {
	return &AlbumHandler{albumService: albumService}
}

func (h *AlbumHandler) List(c *gin.Context) {
	albums, err := h.albumService.FindAll(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, albums)
}

func (h *AlbumHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "album_id")
	if !ok {
		return
	}
	album, err := h.albumService.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, album)
}

func (h *AlbumHandler) Create(c *gin.Context) {
	ownerID, ok := parseUserIDQuery(c)
	if !ok {
		return
	}
	var req dto.AlbumDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	album, err := h.albumService.Save(c.Request.Context(), &req, ownerID)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, album)
}

func (h *AlbumHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "album_id")
	if !ok {
		return
	}
	requester := middleware.GetRequesterEmail(c)

	if err := h.albumService.DeleteByID(c.Request.Context(), id, requester); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}
