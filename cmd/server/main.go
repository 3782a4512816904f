package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/platewise/backend/config"
	httpDelivery "github.com/platewise/backend/internal/delivery/http"
	"github.com/platewise/backend/internal/domain"
	"github.com/platewise/backend/internal/infrastructure/cache"
	"github.com/platewise/backend/internal/infrastructure/logger"
	gormPersistence "github.com/platewise/backend/internal/infrastructure/persistence/gorm"
	"github.com/platewise/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Server.Environment == "development")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting platewise backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache_type", cfg.Cache.Type))

	// Database
	db, err := gormPersistence.Open(cfg.Database)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := gormPersistence.Migrate(db); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}

	// Catalog snapshot cache
	var catalogCache domain.CatalogCache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(context.Background(), cfg.Cache.RedisURL)
		if err != nil {
			log.Fatal("redis connection failed", zap.Error(err))
		}
		defer redisCache.Close()
		catalogCache = redisCache
	default:
		catalogCache = cache.NewMemoryCache()
	}

	// Repositories
	recipes := gormPersistence.NewRecipeRepository(db)
	lines := gormPersistence.NewIngredientLineRepository(db)
	catalog := gormPersistence.NewCatalogRepository(db)
	records := gormPersistence.NewMatchRecordRepository(db)

	// Matching core
	matcher := usecase.NewCatalogMatcher(usecase.MatchConfig{
		MinScore:           cfg.Matching.MinScore,
		ExactThreshold:     cfg.Matching.ExactThreshold,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	}, log)

	provider := usecase.NewCatalogProvider(catalog, catalogCache, cfg.Cache.TTL, log)
	analysis := usecase.NewIngredientAnalysisService(lines, provider, records, matcher, log)

	log.Info("matcher configured",
		zap.Float64("min_score", cfg.Matching.MinScore),
		zap.Float64("exact_threshold", cfg.Matching.ExactThreshold),
		zap.Bool("debug", cfg.Matching.EnableDebugLogging))

	// HTTP layer
	handler := httpDelivery.NewHandler(recipes, records, analysis, log)
	router := httpDelivery.SetupRouter(cfg, handler, log)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
