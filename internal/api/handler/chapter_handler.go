package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/service"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/cache"
)

const chapterEntity = "chapters"

type ChapterHandler struct {
	service service.ChapterService
	cache   *cache.ListCache
}

func NewChapterHandler(s service.ChapterService, lc *cache.ListCache) *ChapterHandler {
	return &ChapterHandler{service: s, cache: lc}
}

func (h *ChapterHandler) RegisterRoutes(reads, admin gin.IRouter) {
	reads.GET("/chapters", h.GetChapters)
	reads.GET("/chapters/:id", h.GetChapter)

	admin.POST("/chapters", h.CreateChapter)
	admin.PUT("/chapters/:id", h.UpdateChapter)
	admin.DELETE("/chapters/:id", h.DeleteChapter)
}

// GetChapters lists chapters, optionally scoped to one manga via ?manga=.
func (h *ChapterHandler) GetChapters(c *gin.Context) {
	page, limit := parsePagination(c)
	mangaID := c.Query("manga")

	hash := cache.FilterHash(struct{ MangaID string }{mangaID})
	if serveCachedList(c, h.cache, chapterEntity, page, limit, hash) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	chapters, total, err := h.service.GetAll(ctx, page, limit, mangaID)
	if err != nil {
		respondError(c, err)
		return
	}
	cacheList(c, h.cache, chapterEntity, page, limit, hash, dto.NewListResponse(chapters, page, limit, total))
}

func (h *ChapterHandler) GetChapter(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	ch, err := h.service.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

func (h *ChapterHandler) CreateChapter(c *gin.Context) {
	var in dto.CreateChapterDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	ch, err := h.service.Create(ctx, in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.cache.InvalidateEntity(ctx, chapterEntity)
	c.JSON(http.StatusCreated, ch)
}

func (h *ChapterHandler) UpdateChapter(c *gin.Context) {
	var in dto.UpdateChapterDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	ch, err := h.service.Update(ctx, c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, chapterEntity)
	c.JSON(http.StatusOK, ch)
}

func (h *ChapterHandler) DeleteChapter(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.Delete(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, chapterEntity)
	c.Status(http.StatusNoContent)
}
