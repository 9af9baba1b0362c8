package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/service"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/cache"
)

const mangaEntity = "mangas"

type MangaHandler struct {
	service service.MangaService
	cache   *cache.ListCache
}

func NewMangaHandler(s service.MangaService, lc *cache.ListCache) *MangaHandler {
	return &MangaHandler{service: s, cache: lc}
}

func (h *MangaHandler) RegisterRoutes(reads, admin gin.IRouter) {
	reads.GET("/mangas", h.GetMangas)
	reads.GET("/mangas/:id", h.GetManga)
	reads.GET("/mangas/uuid/:uuid", h.GetMangaByUUID)

	admin.POST("/mangas", h.CreateManga)
	admin.PATCH("/mangas/:id", h.UpdateManga)
	admin.DELETE("/mangas/:id", h.DeleteManga)
}

func mangaFiltersFromQuery(c *gin.Context) dto.MangaFilters {
	f := dto.MangaFilters{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Language: c.Query("language"),
	}
	if raw := c.Query("categories"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				f.CategoryIDs = append(f.CategoryIDs, id)
			}
		}
	}
	return f
}

func preferredLang(c *gin.Context) string {
	return c.DefaultQuery("lang", "en")
}

// GetMangas handles GET /mangas with pagination, filters and an optional
// lang parameter selecting which translation fills title/description.
func (h *MangaHandler) GetMangas(c *gin.Context) {
	page, limit := parsePagination(c)
	filters := mangaFiltersFromQuery(c)
	lang := preferredLang(c)

	hash := cache.FilterHash(struct {
		dto.MangaFilters
		Lang string
	}{filters, lang})
	if serveCachedList(c, h.cache, mangaEntity, page, limit, hash) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	mangas, total, err := h.service.GetAll(ctx, page, limit, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.MangaResponse, 0, len(mangas))
	for _, m := range mangas {
		out = append(out, dto.FromMangaModel(m, lang))
	}
	cacheList(c, h.cache, mangaEntity, page, limit, hash, dto.NewListResponse(out, page, limit, total))
}

func (h *MangaHandler) GetManga(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	m, err := h.service.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMangaModel(*m, preferredLang(c)))
}

func (h *MangaHandler) GetMangaByUUID(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	m, err := h.service.GetByUUID(ctx, c.Param("uuid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromMangaModel(*m, preferredLang(c)))
}

func (h *MangaHandler) CreateManga(c *gin.Context) {
	var in dto.CreateMangaDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	m, err := h.service.Create(ctx, in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.cache.InvalidateEntity(ctx, mangaEntity)
	c.JSON(http.StatusCreated, dto.FromMangaModel(*m, preferredLang(c)))
}

func (h *MangaHandler) UpdateManga(c *gin.Context) {
	var in dto.UpdateMangaDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	m, err := h.service.Update(ctx, c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, mangaEntity)
	c.JSON(http.StatusOK, dto.FromMangaModel(*m, preferredLang(c)))
}

func (h *MangaHandler) DeleteManga(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.Delete(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, mangaEntity)
	c.Status(http.StatusNoContent)
}
