package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/platewise/backend/internal/domain"
)

// CatalogRepository implements domain.CatalogRepository using GORM.
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListAll returns the full catalog in insertion order. The order is
// part of the matcher's contract: tied containment scores keep the
// first entry scanned.
func (r *CatalogRepository) ListAll(ctx context.Context) ([]domain.CatalogIngredient, error) {
	var models []CatalogIngredientModel

	result := r.db.WithContext(ctx).Order("created_at, id").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	catalog := make([]domain.CatalogIngredient, 0, len(models))
	for i := range models {
		catalog = append(catalog, catalogToDomain(&models[i]))
	}
	return catalog, nil
}
