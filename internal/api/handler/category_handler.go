package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/service"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/cache"
)

const categoryEntity = "categories"

type CategoryHandler struct {
	service service.CategoryService
	cache   *cache.ListCache
}

func NewCategoryHandler(s service.CategoryService, lc *cache.ListCache) *CategoryHandler {
	return &CategoryHandler{service: s, cache: lc}
}

func (h *CategoryHandler) RegisterRoutes(reads, admin gin.IRouter) {
	reads.GET("/categories", h.GetCategories)
	reads.GET("/categories/:id", h.GetCategory)

	admin.POST("/categories", h.CreateCategory)
	admin.PUT("/categories/:id", h.UpdateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveCachedList(c, h.cache, categoryEntity, page, limit, "none") {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	categories, total, err := h.service.GetAll(ctx, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	cacheList(c, h.cache, categoryEntity, page, limit, "none", dto.NewListResponse(categories, page, limit, total))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	cat, err := h.service.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var in dto.CreateCategoryDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	cat, err := h.service.Create(ctx, in)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, categoryEntity)
	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var in dto.UpdateCategoryDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	cat, err := h.service.Update(ctx, c.Param("id"), in)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, categoryEntity)
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.Delete(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, categoryEntity)
	c.Status(http.StatusNoContent)
}
