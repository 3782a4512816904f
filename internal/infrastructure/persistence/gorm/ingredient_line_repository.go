package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/domain"
)

// IngredientLineRepository implements domain.IngredientLineRepository using GORM.
type IngredientLineRepository struct {
	db *gorm.DB
}

// NewIngredientLineRepository creates a new ingredient line repository
func NewIngredientLineRepository(db *gorm.DB) *IngredientLineRepository {
	return &IngredientLineRepository{db: db}
}

// ListByRecipe returns a recipe's raw ingredient lines in entry order.
func (r *IngredientLineRepository) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.RawIngredientLine, error) {
	var models []IngredientLineModel

	result := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("position, created_at").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	lines := make([]domain.RawIngredientLine, 0, len(models))
	for i := range models {
		lines = append(lines, lineToDomain(&models[i]))
	}
	return lines, nil
}
