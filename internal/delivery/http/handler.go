package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/backend/internal/domain"
	"github.com/platewise/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recipes  domain.RecipeRepository
	records  domain.MatchRecordRepository
	analysis *usecase.IngredientAnalysisService
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	recipes domain.RecipeRepository,
	records domain.MatchRecordRepository,
	analysis *usecase.IngredientAnalysisService,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		recipes:  recipes,
		records:  records,
		analysis: analysis,
		logger:   logger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "platewise-backend",
		"version": "1.0.0",
	})
}

// AnalyzeIngredients re-runs ingredient matching for one recipe.
// Prior match records are deleted first so the pass is a full replace,
// then the orchestrator appends the fresh set and the report is
// returned as JSON.
func (h *Handler) AnalyzeIngredients(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	ctx := c.Request.Context()

	recipe, err := h.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		h.logger.Error("recipe lookup failed", zap.String("recipe_id", recipeID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recipe lookup failed"})
		return
	}

	if err := h.records.DeleteByRecipe(ctx, recipeID); err != nil {
		h.logger.Error("deleting prior match records failed",
			zap.String("recipe_id", recipeID.String()),
			zap.String("title", recipe.Title),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not clear prior match records"})
		return
	}

	report, err := h.analysis.AnalyzeRecipeIngredients(ctx, recipeID)
	if err != nil {
		h.logger.Error("ingredient analysis failed",
			zap.String("recipe_id", recipeID.String()),
			zap.String("title", recipe.Title),
			zap.Error(err))

		switch {
		case errors.Is(err, domain.ErrNoIngredientsFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "recipe has no ingredient lines"})
		case errors.Is(err, domain.ErrCatalogLoadFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "ingredient catalog unavailable"})
		case errors.Is(err, domain.ErrPersistFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "match records could not be saved"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ingredient analysis failed"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}
