package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/platewise/backend/internal/domain"
)

// Relink defaults, matching the reference maintenance policy: small
// batches with a pause between them to respect the data store's rate
// limits. Both are caller-side backpressure knobs, not properties of
// the matching algorithm.
const (
	defaultRelinkBatchSize = 5
	defaultRelinkPause     = 2 * time.Second
)

// RelinkConfig holds configuration for the relink runner
type RelinkConfig struct {
	BatchSize int
	Pause     time.Duration
}

// RelinkResult is the outcome of re-analyzing one recipe.
type RelinkResult struct {
	Recipe domain.Recipe
	Report *domain.AnalysisReport
	Err    error
}

// RelinkRunner re-runs ingredient analysis over recipes whose match
// records are missing or point at catalog entries that no longer
// exist. Recipes are processed in throttled batches; a failing recipe
// is logged and collected, and the run continues past it.
type RelinkRunner struct {
	recipes   domain.RecipeRepository
	records   domain.MatchRecordRepository
	analysis  *IngredientAnalysisService
	limiter   *rate.Limiter
	batchSize int
	logger    *zap.Logger
}

// NewRelinkRunner creates a runner. The limiter admits one batch per
// pause interval, with the first batch passing immediately.
func NewRelinkRunner(
	recipes domain.RecipeRepository,
	records domain.MatchRecordRepository,
	analysis *IngredientAnalysisService,
	config RelinkConfig,
	logger *zap.Logger,
) *RelinkRunner {
	batchSize := config.BatchSize
	if batchSize <= 0 {
		batchSize = defaultRelinkBatchSize
	}
	pause := config.Pause
	if pause <= 0 {
		pause = defaultRelinkPause
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RelinkRunner{
		recipes:   recipes,
		records:   records,
		analysis:  analysis,
		limiter:   rate.NewLimiter(rate.Every(pause), 1),
		batchSize: batchSize,
		logger:    logger,
	}
}

// Run finds every broken recipe and re-analyzes each one, deleting its
// stale match records first so the pass is a full replace. Returns the
// per-recipe results; the only terminal errors are the initial lookup
// failing or the context being cancelled.
func (r *RelinkRunner) Run(ctx context.Context) ([]RelinkResult, error) {
	recipes, err := r.recipes.FindUnlinked(ctx)
	if err != nil {
		return nil, fmt.Errorf("finding unlinked recipes: %w", err)
	}
	if len(recipes) == 0 {
		r.logger.Info("no recipes need relinking")
		return nil, nil
	}

	r.logger.Info("relinking recipes",
		zap.Int("count", len(recipes)),
		zap.Int("batch_size", r.batchSize))

	results := make([]RelinkResult, 0, len(recipes))
	for start := 0; start < len(recipes); start += r.batchSize {
		if err := r.limiter.Wait(ctx); err != nil {
			return results, err
		}

		end := start + r.batchSize
		if end > len(recipes) {
			end = len(recipes)
		}

		for _, recipe := range recipes[start:end] {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			results = append(results, r.relinkOne(ctx, recipe))
		}
	}

	return results, nil
}

// relinkOne replaces one recipe's match records: delete, then re-analyze.
func (r *RelinkRunner) relinkOne(ctx context.Context, recipe domain.Recipe) RelinkResult {
	result := RelinkResult{Recipe: recipe}

	if err := r.records.DeleteByRecipe(ctx, recipe.ID); err != nil {
		result.Err = fmt.Errorf("deleting stale match records: %w", err)
	} else {
		result.Report, result.Err = r.analysis.AnalyzeRecipeIngredients(ctx, recipe.ID)
	}

	if result.Err != nil {
		r.logger.Warn("relink failed",
			zap.String("recipe_id", recipe.ID.String()),
			zap.String("title", recipe.Title),
			zap.Error(result.Err))
		return result
	}

	r.logger.Info("recipe relinked",
		zap.String("recipe_id", recipe.ID.String()),
		zap.String("title", recipe.Title),
		zap.Int("matched", result.Report.MatchedCount),
		zap.Int("unmatched", result.Report.UnmatchedCount))
	return result
}
