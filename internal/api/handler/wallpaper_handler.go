package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/service"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/cache"
)

const wallpaperEntity = "wallpapers"

type WallpaperHandler struct {
	service service.WallpaperService
	cache   *cache.ListCache
}

func NewWallpaperHandler(s service.WallpaperService, lc *cache.ListCache) *WallpaperHandler {
	return &WallpaperHandler{service: s, cache: lc}
}

func (h *WallpaperHandler) RegisterRoutes(reads, admin gin.IRouter) {
	reads.GET("/wallpapers", h.GetWallpapers)
	reads.GET("/wallpapers/:id", h.GetWallpaper)
	reads.GET("/wallpapers/:id/images", h.GetWallpaperImages)

	admin.POST("/wallpapers", h.CreateWallpaper)
	admin.PUT("/wallpapers/:id", h.UpdateWallpaper)
	admin.DELETE("/wallpapers/:id", h.DeleteWallpaper)
	admin.POST("/wallpapers/:id/images", h.AddWallpaperImage)
	admin.DELETE("/wallpapers/:id/images/:imageID", h.DeleteWallpaperImage)
}

func (h *WallpaperHandler) GetWallpapers(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveCachedList(c, h.cache, wallpaperEntity, page, limit, "none") {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	wallpapers, total, err := h.service.GetAll(ctx, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.WallpaperResponse, 0, len(wallpapers))
	for _, w := range wallpapers {
		count, err := h.service.CountImages(ctx, w.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, dto.FromWallpaperModel(w, count))
	}
	cacheList(c, h.cache, wallpaperEntity, page, limit, "none", dto.NewListResponse(out, page, limit, total))
}

func (h *WallpaperHandler) GetWallpaper(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	w, err := h.service.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	count, err := h.service.CountImages(ctx, w.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromWallpaperModel(*w, count))
}

// GetWallpaperImages pages through the images of a single wallpaper.
func (h *WallpaperHandler) GetWallpaperImages(c *gin.Context) {
	page, limit := parsePagination(c)

	ctx, cancel := requestContext(c)
	defer cancel()

	images, total, err := h.service.GetImages(ctx, c.Param("id"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(images, page, limit, total))
}

func (h *WallpaperHandler) CreateWallpaper(c *gin.Context) {
	var in dto.CreateWallpaperDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	w, err := h.service.Create(ctx, in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.cache.InvalidateEntity(ctx, wallpaperEntity)
	c.JSON(http.StatusCreated, dto.FromWallpaperModel(*w, 0))
}

func (h *WallpaperHandler) UpdateWallpaper(c *gin.Context) {
	var in dto.UpdateWallpaperDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	w, err := h.service.Update(ctx, c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	count, err := h.service.CountImages(ctx, w.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, wallpaperEntity)
	c.JSON(http.StatusOK, dto.FromWallpaperModel(*w, count))
}

func (h *WallpaperHandler) DeleteWallpaper(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.Delete(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, wallpaperEntity)
	c.Status(http.StatusNoContent)
}

func (h *WallpaperHandler) AddWallpaperImage(c *gin.Context) {
	var in dto.CreateWallpaperImageDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	img, err := h.service.AddImage(ctx, c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, wallpaperEntity)
	c.JSON(http.StatusCreated, img)
}

func (h *WallpaperHandler) DeleteWallpaperImage(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.DeleteImage(ctx, c.Param("id"), c.Param("imageID")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, wallpaperEntity)
	c.Status(http.StatusNoContent)
}
