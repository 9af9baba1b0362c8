package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/service"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/cache"
)

const languageEntity = "languages"

type LanguageHandler struct {
	service service.LanguageService
	cache   *cache.ListCache
}

func NewLanguageHandler(s service.LanguageService, lc *cache.ListCache) *LanguageHandler {
	return &LanguageHandler{service: s, cache: lc}
}

func (h *LanguageHandler) RegisterRoutes(reads, admin gin.IRouter) {
	reads.GET("/languages", h.GetLanguages)
	reads.GET("/languages/:id", h.GetLanguage)

	admin.POST("/languages", h.CreateLanguage)
	admin.PUT("/languages/:id", h.UpdateLanguage)
	admin.DELETE("/languages/:id", h.DeleteLanguage)
}

func (h *LanguageHandler) GetLanguages(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveCachedList(c, h.cache, languageEntity, page, limit, "none") {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	languages, total, err := h.service.GetAll(ctx, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	cacheList(c, h.cache, languageEntity, page, limit, "none", dto.NewListResponse(languages, page, limit, total))
}

func (h *LanguageHandler) GetLanguage(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	lang, err := h.service.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lang)
}

func (h *LanguageHandler) CreateLanguage(c *gin.Context) {
	var in dto.CreateLanguageDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	lang, err := h.service.Create(ctx, in)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, languageEntity)
	c.JSON(http.StatusCreated, lang)
}

func (h *LanguageHandler) UpdateLanguage(c *gin.Context) {
	var in dto.UpdateLanguageDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	lang, err := h.service.Update(ctx, c.Param("id"), in)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, languageEntity)
	c.JSON(http.StatusOK, lang)
}

func (h *LanguageHandler) DeleteLanguage(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.Delete(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, languageEntity)
	c.Status(http.StatusNoContent)
}
