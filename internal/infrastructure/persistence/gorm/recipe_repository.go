package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/domain"
)

// RecipeRepository implements domain.RecipeRepository using GORM.
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// GetByID finds a recipe by ID
func (r *RecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, result.Error
	}

	return recipeToDomain(&model), nil
}

// FindUnlinked returns recipes that have ingredient lines but whose
// match records are missing entirely or reference catalog entries that
// no longer exist — the breakage the relink command repairs.
func (r *RecipeRepository) FindUnlinked(ctx context.Context) ([]domain.Recipe, error) {
	var models []RecipeModel

	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT r.id, r.title
		FROM recipes r
		JOIN recipe_ingredients ri ON ri.recipe_id = r.id
		LEFT JOIN ingredient_matches m ON m.recipe_id = r.id
		LEFT JOIN ingredients i ON i.id = m.catalog_ingredient_id
		WHERE m.id IS NULL OR i.id IS NULL
		ORDER BY r.title`).Scan(&models).Error
	if err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, *recipeToDomain(&models[i]))
	}
	return recipes, nil
}
