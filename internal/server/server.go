package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/snapmenu/backend/config"
	"github.com/snapmenu/backend/internal/api"
	"github.com/snapmenu/backend/internal/i18n"
	"github.com/snapmenu/backend/internal/middleware"
	"github.com/snapmenu/backend/internal/router"
	"github.com/snapmenu/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New wires services and handlers into a server instance. cache may be
// nil, which disables the recent-recipes cache, language persistence and
// the rate limiter.
func New(cfg *config.Config, db *gorm.DB, cache *redis.Client) (*Server, error) {
	ctx := context.Background()

	photo, err := service.NewPhotoStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var langStore i18n.Store
	var rateLimit gin.HandlerFunc
	if cache != nil {
		langStore = i18n.NewRedisStore(cache)
		limiter := middleware.NewRateLimiter(cache, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     10,
			KeyPrefix: "ratelimit:analyze",
		})
		rateLimit = limiter.RateLimitMiddleware()
	}
	translator := i18n.NewTranslator(ctx, langStore)

	searchService := service.NewSearchService(db, cache)
	generationService := service.NewGenerationService(db, cache, photo, nil, cfg.AnalysisDelay)
	ingestService := service.NewIngestService(db, cache, photo)

	recipeHandler := api.NewRecipeHandler(searchService, generationService, ingestService)
	languageHandler := api.NewLanguageHandler(translator)

	r := router.SetupRouter(recipeHandler, languageHandler, rateLimit)

	return &Server{
		router: r,
		db:     db,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: r,
		},
	}, nil
}

// Start runs the server until it is shut down or fails.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
