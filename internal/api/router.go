// Package api assembles the admin HTTP API: repositories over GORM,
// services on top, gin handlers on the outside.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/handler"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/middleware"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/repository"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/service"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/cache"
	"github.com/JohnnyBoySou/dash-s2mangas/internal/config"
)

// NewRouter builds the gin engine with every route mounted. Reads live
// under / behind the JWT middleware, mutations under /admin with an
// additional admin role check. Only the auth endpoints are open.
func NewRouter(cfg *config.Config, db *gorm.DB, pool *pgxpool.Pool, listCache *cache.ListCache, logger *slog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	userRepo := repository.NewUserRepo(db)
	mangaRepo := repository.NewMangaRepo(db)
	chapterRepo := repository.NewChapterRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	languageRepo := repository.NewLanguageRepo(db)
	tagRepo := repository.NewTagRepo(db)
	playlistRepo := repository.NewPlaylistRepo(db)
	wallpaperRepo := repository.NewWallpaperRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)

	authService := service.NewAuthService(userRepo, cfg, logger)
	userService := service.NewUserService(userRepo)
	mangaService := service.NewMangaService(mangaRepo)
	chapterService := service.NewChapterService(chapterRepo, mangaRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	languageService := service.NewLanguageService(languageRepo)
	tagService := service.NewTagService(tagRepo)
	playlistService := service.NewPlaylistService(playlistRepo)
	wallpaperService := service.NewWallpaperService(wallpaperRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	statisticsService := service.NewStatisticsService(pool)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthMiddleware(authService)

	handler.NewAuthHandler(authService).RegisterRoutes(r, middleware.LoginRateLimit(), authRequired)

	reads := r.Group("/", authRequired)
	admin := r.Group("/admin", authRequired, middleware.RequireAdmin())

	handler.NewMangaHandler(mangaService, listCache).RegisterRoutes(reads, admin)
	handler.NewChapterHandler(chapterService, listCache).RegisterRoutes(reads, admin)
	handler.NewCategoryHandler(categoryService, listCache).RegisterRoutes(reads, admin)
	handler.NewLanguageHandler(languageService, listCache).RegisterRoutes(reads, admin)
	handler.NewTagHandler(tagService, listCache).RegisterRoutes(reads, admin)
	handler.NewPlaylistHandler(playlistService, listCache).RegisterRoutes(reads, admin)
	handler.NewWallpaperHandler(wallpaperService, listCache).RegisterRoutes(reads, admin)
	handler.NewNotificationHandler(notificationService, listCache).RegisterRoutes(reads, admin)
	handler.NewUserHandler(userService, listCache).RegisterRoutes(admin)
	handler.NewStatisticsHandler(statisticsService).RegisterRoutes(admin)

	return r
}
