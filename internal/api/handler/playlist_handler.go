package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/service"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/cache"
)

const playlistEntity = "playlists"

type PlaylistHandler struct {
	service service.PlaylistService
	cache   *cache.ListCache
}

func NewPlaylistHandler(s service.PlaylistService, lc *cache.ListCache) *PlaylistHandler {
	return &PlaylistHandler{service: s, cache: lc}
}

func (h *PlaylistHandler) RegisterRoutes(reads, admin gin.IRouter) {
	reads.GET("/playlists", h.GetPlaylists)
	reads.GET("/playlists/:id", h.GetPlaylist)

	admin.POST("/playlists", h.CreatePlaylist)
	admin.PUT("/playlists/:id", h.UpdatePlaylist)
	admin.DELETE("/playlists/:id", h.DeletePlaylist)
}

func (h *PlaylistHandler) GetPlaylists(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveCachedList(c, h.cache, playlistEntity, page, limit, "none") {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	playlists, total, err := h.service.GetAll(ctx, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.PlaylistResponse, 0, len(playlists))
	for _, p := range playlists {
		out = append(out, dto.FromPlaylistModel(p))
	}
	cacheList(c, h.cache, playlistEntity, page, limit, "none", dto.NewListResponse(out, page, limit, total))
}

func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	p, err := h.service.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPlaylistModel(*p))
}

func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	var in dto.CreatePlaylistDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	p, err := h.service.Create(ctx, in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.cache.InvalidateEntity(ctx, playlistEntity)
	c.JSON(http.StatusCreated, dto.FromPlaylistModel(*p))
}

func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	var in dto.UpdatePlaylistDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	p, err := h.service.Update(ctx, c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, playlistEntity)
	c.JSON(http.StatusOK, dto.FromPlaylistModel(*p))
}

func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.Delete(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, playlistEntity)
	c.Status(http.StatusNoContent)
}
