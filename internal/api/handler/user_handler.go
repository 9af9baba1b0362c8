package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/dto"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/service"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/cache"
)

const userEntity = "users"

type UserHandler struct {
	service service.UserService
	cache   *cache.ListCache
}

func NewUserHandler(s service.UserService, lc *cache.ListCache) *UserHandler {
	return &UserHandler{service: s, cache: lc}
}

// RegisterRoutes mounts all user endpoints under the admin group. Account
// listings are never public.
func (h *UserHandler) RegisterRoutes(admin gin.IRouter) {
	admin.GET("/users", h.GetUsers)
	admin.GET("/users/:id", h.GetUser)
	admin.POST("/users", h.CreateUser)
	admin.PUT("/users/:id", h.UpdateUser)
	admin.DELETE("/users/:id", h.DeleteUser)
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveCachedList(c, h.cache, userEntity, page, limit, "none") {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	users, total, err := h.service.GetAll(ctx, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.FromUserModel(u))
	}
	cacheList(c, h.cache, userEntity, page, limit, "none", dto.NewListResponse(out, page, limit, total))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	u, err := h.service.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUserModel(*u))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var in dto.CreateUserDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	u, err := h.service.Create(ctx, in)
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) || errors.Is(err, service.ErrNameInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, userEntity)
	c.JSON(http.StatusCreated, dto.FromUserModel(*u))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var in dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	u, err := h.service.Update(ctx, c.Param("id"), in)
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) || errors.Is(err, service.ErrNameInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, userEntity)
	c.JSON(http.StatusOK, dto.FromUserModel(*u))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.service.Delete(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateEntity(ctx, userEntity)
	c.Status(http.StatusNoContent)
}
