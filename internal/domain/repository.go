package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RecipeRepository exposes the recipe lookups the matching core and its
// call sites need.
type RecipeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Recipe, error)

	// FindUnlinked returns recipes whose ingredient lines have no match
	// records, or whose match records point at catalog entries that no
	// longer exist. Used by the maintenance relink command.
	FindUnlinked(ctx context.Context) ([]Recipe, error)
}

// IngredientLineRepository loads the raw ingredient lines of a recipe.
type IngredientLineRepository interface {
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]RawIngredientLine, error)
}

// CatalogRepository loads the canonical ingredient catalog.
// ListAll must return entries in stable insertion order: the matcher's
// tie-break keeps the first entry encountered during the scan.
type CatalogRepository interface {
	ListAll(ctx context.Context) ([]CatalogIngredient, error)
}

// MatchRecordRepository persists match provenance. The orchestrator
// only appends; DeleteByRecipe is the caller-side idempotency hook run
// before re-analyzing a recipe.
type MatchRecordRepository interface {
	BulkInsert(ctx context.Context, records []MatchRecord) error
	DeleteByRecipe(ctx context.Context, recipeID uuid.UUID) error
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]MatchRecord, error)
}

// CatalogCache defines the interface for catalog snapshot caching
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
