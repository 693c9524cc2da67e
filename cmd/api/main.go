package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"solartrack/internal/ai"
	"solartrack/internal/config"
	"solartrack/internal/database"
	"solartrack/internal/middleware"
	"solartrack/internal/modules/analysis"
	"solartrack/internal/modules/project"
	"solartrack/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	if err := repository.Migrate(db); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}

	projectRepo := repository.NewProjectRepository(db)
	itemRepo := repository.NewChecklistItemRepository(db)

	aiClient := ai.NewClient(ai.Config{
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
		APIKey:  cfg.AI.APIKey,
		Timeout: cfg.AI.Timeout(),
	}, logger)
	if !aiClient.Enabled() {
		logger.Info("AI assistant disabled, analysis and reports use deterministic output")
	}

	projectService := project.NewService(projectRepo, itemRepo)
	projectHandler := project.NewHandler(projectService)

	analysisService := analysis.NewService(projectRepo, itemRepo, aiClient, logger)
	analysisHandler := analysis.NewHandler(analysisService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	v1 := r.Group("/api/v1")
	{
		projectHandler.RegisterRoutes(v1)
		analysisHandler.RegisterRoutes(v1)
	}

	logger.Info("starting solartrack API",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
