package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/backend/internal/domain"
)

// IngredientAnalysisService is the batch orchestrator: for one recipe
// it loads the raw ingredient lines and the catalog, runs the matcher
// per line, bulk-persists the resulting match records, and reports
// counts plus the unmatched raw texts.
//
// The service only appends records. Callers that re-run a recipe must
// delete its prior records first (full replace, not upsert); keeping
// that policy outside the orchestrator leaves it a pure function of
// catalog + raw lines, which is what makes it testable.
type IngredientAnalysisService struct {
	lines   domain.IngredientLineRepository
	catalog *CatalogProvider
	records domain.MatchRecordRepository
	matcher *CatalogMatcher
	logger  *zap.Logger
}

// NewIngredientAnalysisService creates the orchestrator with its dependencies
func NewIngredientAnalysisService(
	lines domain.IngredientLineRepository,
	catalog *CatalogProvider,
	records domain.MatchRecordRepository,
	matcher *CatalogMatcher,
	logger *zap.Logger,
) *IngredientAnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IngredientAnalysisService{
		lines:   lines,
		catalog: catalog,
		records: records,
		matcher: matcher,
		logger:  logger,
	}
}

// AnalyzeRecipeIngredients runs one matching pass over a recipe.
//
// Blank lines are silently skipped, so for N non-blank lines the report
// satisfies MatchedCount + UnmatchedCount == N. Load and persist
// failures are surfaced as ErrCatalogLoadFailed / ErrPersistFailed and
// are not retried here; the caller retries the whole pass after
// deleting prior records.
func (s *IngredientAnalysisService) AnalyzeRecipeIngredients(ctx context.Context, recipeID uuid.UUID) (*domain.AnalysisReport, error) {
	lines, err := s.lines.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("loading ingredient lines: %w", err)
	}
	if len(lines) == 0 {
		return nil, domain.ErrNoIngredientsFound
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogLoadFailed, err)
	}

	report := &domain.AnalysisReport{
		RecipeID:  recipeID,
		Unmatched: []string{},
	}
	var matched []domain.MatchRecord

	now := time.Now()
	for _, line := range lines {
		if strings.TrimSpace(line.RawText) == "" {
			continue
		}

		candidate := s.matcher.Match(line.RawText, catalog)
		if candidate == nil {
			report.Unmatched = append(report.Unmatched, line.RawText)
			report.UnmatchedCount++
			continue
		}

		record := domain.MatchRecord{
			ID:                  uuid.New(),
			RecipeID:            recipeID,
			RawIngredientLineID: line.ID,
			CatalogIngredientID: candidate.Ingredient.ID,
			OriginalText:        line.RawText,
			MatchedTerm:         candidate.Ingredient.Name,
			MatchType:           s.matcher.Classify(candidate.Score),
			CreatedAt:           now,
		}
		if record.MatchType == domain.MatchTypeAlias {
			alias := candidate.Ingredient.Name
			record.MatchedAlias = &alias
		}

		matched = append(matched, record)
		report.MatchedCount++
	}

	if len(matched) > 0 {
		if err := s.records.BulkInsert(ctx, matched); err != nil {
			// Matching work is discarded, not cached: the caller retries
			// the whole pass.
			return nil, fmt.Errorf("%w: %v", domain.ErrPersistFailed, err)
		}
	}

	s.logger.Info("ingredient analysis complete",
		zap.String("recipe_id", recipeID.String()),
		zap.Int("matched", report.MatchedCount),
		zap.Int("unmatched", report.UnmatchedCount))

	return report, nil
}
