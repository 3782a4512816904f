package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/platewise/backend/internal/domain"
)

// catalogCacheKey is where the serialized catalog snapshot lives.
const catalogCacheKey = "catalog:ingredients"

// defaultCatalogTTL bounds how stale a cached snapshot may get.
const defaultCatalogTTL = 15 * time.Minute

// CatalogProvider loads the full ingredient catalog, keeping a
// serialized snapshot in the cache so repeated matching passes do not
// hammer the reference tables. Cache failures degrade to a direct load;
// they never fail the matching pass.
type CatalogProvider struct {
	repo   domain.CatalogRepository
	cache  domain.CatalogCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCatalogProvider creates a provider. cache may be nil, in which
// case every call loads straight from the repository.
func NewCatalogProvider(repo domain.CatalogRepository, cache domain.CatalogCache, ttl time.Duration, logger *zap.Logger) *CatalogProvider {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogProvider{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Catalog returns the full catalog in stable insertion order.
// Flow: check cache -> load from repository -> cache snapshot -> return.
func (p *CatalogProvider) Catalog(ctx context.Context) ([]domain.CatalogIngredient, error) {
	if p.cache != nil {
		if data, err := p.cache.Get(ctx, catalogCacheKey); err == nil {
			var snapshot []domain.CatalogIngredient
			if err := json.Unmarshal(data, &snapshot); err == nil {
				return snapshot, nil
			}
			// Unreadable snapshot: drop it and fall through to a fresh load.
			p.logger.Warn("dropping corrupt catalog snapshot", zap.String("key", catalogCacheKey))
			_ = p.cache.Delete(ctx, catalogCacheKey)
		}
	}

	catalog, err := p.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if data, err := json.Marshal(catalog); err == nil {
			if err := p.cache.Set(ctx, catalogCacheKey, data, p.ttl); err != nil {
				p.logger.Debug("catalog snapshot cache write failed", zap.Error(err))
			}
		}
	}

	return catalog, nil
}

// Invalidate drops the cached snapshot, forcing the next pass to load
// fresh. Called after reference-data edits.
func (p *CatalogProvider) Invalidate(ctx context.Context) error {
	if p.cache == nil {
		return nil
	}
	return p.cache.Delete(ctx, catalogCacheKey)
}
