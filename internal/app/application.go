package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"landing-builder-backend/internal/config"
	"landing-builder-backend/internal/handlers"
	"landing-builder-backend/internal/middleware"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/repository"
	"landing-builder-backend/internal/seed"
	"landing-builder-backend/internal/service"
	"landing-builder-backend/pkg/cache"
	"landing-builder-backend/pkg/logger"
)

type Application struct {
	cfg *config.Config

	ctx    context.Context
	cancel context.CancelFunc

	db    *gorm.DB
	cache *cache.Cache

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	rateLimits *middleware.RateLimitManager
	router     *gin.Engine
	server     *http.Server
}

type repositoryContainer struct {
	LandingPage repository.LandingPageRepository
}

type serviceContainer struct {
	Documents *service.DocumentService
	Builder   *service.BuilderService
}

type handlerContainer struct {
	Builder *handlers.BuilderHandler
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &Application{
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}

	if err := app.initDatabase(); err != nil {
		cancel()
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		cancel()
		return nil, err
	}

	if err := app.createIndexes(); err != nil {
		cancel()
		return nil, err
	}

	app.initCache()
	app.initRepositories()

	if err := app.initServices(); err != nil {
		cancel()
		return nil, err
	}

	app.initHandlers()
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	a.services.Builder.StartSweeper(a.ctx)

	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	a.cancel()
	if a.services.Builder != nil {
		a.services.Builder.Wait()
	}
	if a.rateLimits != nil {
		_ = a.rateLimits.Shutdown()
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(&models.LandingPage{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) createIndexes() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Creating database indexes", nil)

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_landing_pages_published ON landing_pages(is_published) WHERE is_published = true",
		"CREATE INDEX IF NOT EXISTS idx_landing_pages_updated_at ON landing_pages(updated_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_landing_pages_document ON landing_pages USING GIN (document)",
	}

	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (a *Application) initCache() {
	if !a.cfg.EnableCache {
		a.cache = cache.Disabled()
		return
	}

	c, err := cache.NewCache(a.cfg.RedisURL, true)
	if err != nil {
		logger.Error(err, "Redis unavailable, continuing without cache", map[string]interface{}{"addr": a.cfg.RedisURL})
		a.cache = cache.Disabled()
		return
	}
	a.cache = c
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		LandingPage: repository.NewLandingPageRepository(a.db),
	}
}

func (a *Application) initServices() error {
	catalog, err := seed.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("failed to load page templates: %w", err)
	}
	if a.cfg.DefaultTemplate == "" {
		a.cfg.DefaultTemplate = seed.BlankTemplate
	}
	if _, ok := catalog.Template(a.cfg.DefaultTemplate); !ok {
		return fmt.Errorf("%w: default template %q", seed.ErrTemplateNotFound, a.cfg.DefaultTemplate)
	}

	documents := service.NewDocumentService(a.repositories.LandingPage, a.cache)
	a.services = serviceContainer{
		Documents: documents,
		Builder: service.NewBuilderService(documents, catalog, service.LogNotifier{}, service.BuilderConfig{
			SessionTTL:      time.Duration(a.cfg.SessionTTLMinutes) * time.Minute,
			DefaultTemplate: a.cfg.DefaultTemplate,
		}),
	}
	return nil
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Builder: handlers.NewBuilderHandler(a.services.Builder),
	}
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a.rateLimits = middleware.NewRateLimitManager(a.ctx)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	router.Use(middleware.SecurityHeadersMiddleware())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.RateLimitMiddleware(a.cfg, a.rateLimits))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"sessions": a.services.Builder.Len(),
			"cache":    a.cache.Enabled(),
			"time":     time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	builderGroup := v1.Group("/builder")
	a.handlers.Builder.RegisterRoutes(builderGroup)
	builderGroup.DELETE("/cache/pages/:id", handlers.InvalidatePageCache(a.cache))

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Route not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	a.router = router
}
