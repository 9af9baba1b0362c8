package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/service"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/cache"
)

const notificationEntity = "notifications"

type NotificationHandler struct {
	service service.NotificationService
	cache   *cache.ListCache
}

func NewNotificationHandler(s service.NotificationService, lc *cache.ListCache) *NotificationHandler {
	return &NotificationHandler{service: s, cache: lc}
}

func (h *NotificationHandler) RegisterRoutes(reads, admin gin.IRouter) {
	reads.GET("/notifications", h.GetNotifications)
	reads.GET("/notifications/:id", h.GetNotification)

	admin.POST("/notifications", h.CreateNotification)
	admin.PUT("/notifications/:id", h.UpdateNotification)
	admin.DELETE("/notifications/:id", h.DeleteNotification)
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveCachedList(c, h.cache, notificationEntity, page, limit, "none") {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	notifications, total, err := h.service.GetAll(ctx, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	cacheList(c, h.cache, notificationEntity, page, limit, "none", dto.NewListResponse(notifications, page, limit, total))
}

func (h *NotificationHandler) GetNotification(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	n, err := h.service.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var in dto.CreateNotificationDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	n, err := h.service.Create(ctx, in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.cache.InvalidateEntity(ctx, notificationEntity)
	c.JSON(http.StatusCreated, n)
}

func (h *NotificationHandler) UpdateNotification(c *gin.Context) {
	var in dto.UpdateNotificationDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	n, err := h.service.Update(ctx, c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, notificationEntity)
	c.JSON(http.StatusOK, n)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.Delete(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, notificationEntity)
	c.Status(http.StatusNoContent)
}
