// Command relink repairs recipes whose ingredient match records are
// missing or point at catalog entries that no longer exist. It re-runs
// the matching pass for each broken recipe in throttled batches and
// prints a per-recipe summary.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/platewise/backend/config"
	"github.com/platewise/backend/internal/infrastructure/cache"
	"github.com/platewise/backend/internal/infrastructure/logger"
	gormPersistence "github.com/platewise/backend/internal/infrastructure/persistence/gorm"
	"github.com/platewise/backend/internal/usecase"
)

func main() {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := gormPersistence.Open(cfg.Database)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	recipes := gormPersistence.NewRecipeRepository(db)
	lines := gormPersistence.NewIngredientLineRepository(db)
	catalog := gormPersistence.NewCatalogRepository(db)
	records := gormPersistence.NewMatchRecordRepository(db)

	matcher := usecase.NewCatalogMatcher(usecase.MatchConfig{
		MinScore:           cfg.Matching.MinScore,
		ExactThreshold:     cfg.Matching.ExactThreshold,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	}, log)

	// One in-memory snapshot for the whole run: the catalog does not
	// change mid-pass, and reloading it per recipe is what the cache
	// is here to avoid.
	provider := usecase.NewCatalogProvider(catalog, cache.NewMemoryCache(), cfg.Cache.TTL, log)
	analysis := usecase.NewIngredientAnalysisService(lines, provider, records, matcher, log)

	runner := usecase.NewRelinkRunner(recipes, records, analysis, usecase.RelinkConfig{
		BatchSize: cfg.Relink.BatchSize,
		Pause:     cfg.Relink.Pause,
	}, log)

	results, err := runner.Run(ctx)
	if err != nil {
		log.Error("relink run aborted", zap.Error(err))
	}

	var succeeded, failed, unmatched int
	for _, result := range results {
		if result.Err != nil {
			failed++
			continue
		}
		succeeded++
		unmatched += result.Report.UnmatchedCount
	}

	log.Info("relink summary",
		zap.Int("recipes", len(results)),
		zap.Int("succeeded", succeeded),
		zap.Int("failed", failed),
		zap.Int("unmatched_lines", unmatched))

	if err != nil || failed > 0 {
		os.Exit(1)
	}
}
