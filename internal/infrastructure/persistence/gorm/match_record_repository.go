package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/domain"
)

// insertBatchSize bounds one INSERT statement for bulk writes.
const insertBatchSize = 100

// MatchRecordRepository implements domain.MatchRecordRepository using GORM.
type MatchRecordRepository struct {
	db *gorm.DB
}

// NewMatchRecordRepository creates a new match record repository
func NewMatchRecordRepository(db *gorm.DB) *MatchRecordRepository {
	return &MatchRecordRepository{db: db}
}

// BulkInsert writes all records of one matching pass in a single batch.
func (r *MatchRecordRepository) BulkInsert(ctx context.Context, records []domain.MatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	models := make([]MatchRecordModel, 0, len(records))
	for i := range records {
		models = append(models, matchRecordToModel(&records[i]))
	}

	return r.db.WithContext(ctx).CreateInBatches(models, insertBatchSize).Error
}

// DeleteByRecipe removes every match record of a recipe. Run by callers
// before re-analyzing, so each pass is a full replace.
func (r *MatchRecordRepository) DeleteByRecipe(ctx context.Context, recipeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&MatchRecordModel{}).Error
}

// ListByRecipe returns a recipe's match records in insertion order.
func (r *MatchRecordRepository) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.MatchRecord, error) {
	var models []MatchRecordModel

	result := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at, id").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]domain.MatchRecord, 0, len(models))
	for i := range models {
		records = append(records, matchRecordToDomain(&models[i]))
	}
	return records, nil
}
