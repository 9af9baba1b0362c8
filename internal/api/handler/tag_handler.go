package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/service"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/cache"
)

const tagEntity = "tags"

type TagHandler struct {
	service service.TagService
	cache   *cache.ListCache
}

func NewTagHandler(s service.TagService, lc *cache.ListCache) *TagHandler {
	return &TagHandler{service: s, cache: lc}
}

func (h *TagHandler) RegisterRoutes(reads, admin gin.IRouter) {
	reads.GET("/tags", h.GetTags)
	reads.GET("/tags/:id", h.GetTag)

	admin.POST("/tags", h.CreateTag)
	admin.PUT("/tags/:id", h.UpdateTag)
	admin.DELETE("/tags/:id", h.DeleteTag)
}

func (h *TagHandler) GetTags(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveCachedList(c, h.cache, tagEntity, page, limit, "none") {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	tags, total, err := h.service.GetAll(ctx, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	cacheList(c, h.cache, tagEntity, page, limit, "none", dto.NewListResponse(tags, page, limit, total))
}

func (h *TagHandler) GetTag(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	tag, err := h.service.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var in dto.CreateTagDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	tag, err := h.service.Create(ctx, in)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, tagEntity)
	c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	var in dto.UpdateTagDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	tag, err := h.service.Update(ctx, c.Param("id"), in)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, tagEntity)
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.Delete(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, tagEntity)
	c.Status(http.StatusNoContent)
}
