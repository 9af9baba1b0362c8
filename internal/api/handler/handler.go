// Package handler holds the gin HTTP handlers for the admin API. Each
// entity gets its own handler struct bound to a service; list endpoints
// share the pagination envelope and the Redis list cache.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/cache"
)

const requestTimeout = 5 * time.Second

// parsePagination reads page/limit query parameters with sane bounds.
// Anything unparseable falls back to the defaults.
func parsePagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// serveCachedList replies with a cached list page when one exists. Returns
// true when the response has been written.
func serveCachedList(c *gin.Context, lc *cache.ListCache, entity string, page, limit int, filterHash string) bool {
	ctx, cancel := requestContext(c)
	defer cancel()

	raw, ok := lc.GetList(ctx, entity, page, limit, filterHash)
	if !ok {
		return false
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
	return true
}

// cacheList serializes and stores a list response, then writes it out.
func cacheList(c *gin.Context, lc *cache.ListCache, entity string, page, limit int, filterHash string, body any) {
	if raw, err := json.Marshal(body); err == nil {
		ctx, cancel := requestContext(c)
		defer cancel()
		lc.SetList(ctx, entity, page, limit, filterHash, raw)
	}
	c.JSON(http.StatusOK, body)
}
