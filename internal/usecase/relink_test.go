package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/backend/internal/domain"
)

type fakeRecipeRepo struct {
	unlinked []domain.Recipe
	err      error
}

func (f *fakeRecipeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	for _, r := range f.unlinked {
		if r.ID == id {
			recipe := r
			return &recipe, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

func (f *fakeRecipeRepo) FindUnlinked(ctx context.Context) ([]domain.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.unlinked, nil
}

func fastRelinkConfig() RelinkConfig {
	return RelinkConfig{BatchSize: 2, Pause: time.Millisecond}
}

func recipesNamed(titles ...string) []domain.Recipe {
	recipes := make([]domain.Recipe, 0, len(titles))
	for _, title := range titles {
		recipes = append(recipes, domain.Recipe{ID: uuid.New(), Title: title})
	}
	return recipes
}

func TestRelinkRun(t *testing.T) {
	ctx := context.Background()

	t.Run("empty worklist is a no-op", func(t *testing.T) {
		runner := NewRelinkRunner(&fakeRecipeRepo{}, &fakeRecordRepo{}, nil, fastRelinkConfig(), nil)

		results, err := runner.Run(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if results != nil {
			t.Errorf("results = %v, want nil", results)
		}
	})

	t.Run("lookup failure is terminal", func(t *testing.T) {
		lookupErr := errors.New("connection reset")
		runner := NewRelinkRunner(&fakeRecipeRepo{err: lookupErr}, &fakeRecordRepo{}, nil, fastRelinkConfig(), nil)

		_, err := runner.Run(ctx)
		if !errors.Is(err, lookupErr) {
			t.Errorf("error = %v, want lookup error", err)
		}
	})

	t.Run("deletes stale records before re-analyzing", func(t *testing.T) {
		recipes := recipesNamed("Minestrone")
		recipeID := recipes[0].ID
		records := &fakeRecordRepo{}
		analysis := newTestService(
			&fakeLineRepo{lines: map[uuid.UUID][]domain.RawIngredientLine{
				recipeID: {lineFor(recipeID, "1 onion")},
			}},
			&fakeCatalogRepo{catalog: catalogOf("onion")},
			records,
		)
		runner := NewRelinkRunner(&fakeRecipeRepo{unlinked: recipes}, records, analysis, fastRelinkConfig(), nil)

		results, err := runner.Run(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].Err != nil {
			t.Fatalf("results = %+v, want one success", results)
		}
		if len(records.deleted) != 1 || records.deleted[0] != recipeID {
			t.Errorf("deleted = %v, want the relinked recipe's records", records.deleted)
		}
		if len(records.inserted) != 1 {
			t.Errorf("inserted %d records, want 1", len(records.inserted))
		}
		if results[0].Report.MatchedCount != 1 {
			t.Errorf("Report.MatchedCount = %d, want 1", results[0].Report.MatchedCount)
		}
	})

	t.Run("continues past a failing recipe", func(t *testing.T) {
		recipes := recipesNamed("Soup", "Empty Shell", "Stew")
		lines := map[uuid.UUID][]domain.RawIngredientLine{
			recipes[0].ID: {lineFor(recipes[0].ID, "1 onion")},
			// recipes[1] has no lines: AnalyzeRecipeIngredients fails it.
			recipes[2].ID: {lineFor(recipes[2].ID, "2 cloves garlic")},
		}
		records := &fakeRecordRepo{}
		analysis := newTestService(
			&fakeLineRepo{lines: lines},
			&fakeCatalogRepo{catalog: catalogOf("onion", "garlic")},
			records,
		)
		runner := NewRelinkRunner(&fakeRecipeRepo{unlinked: recipes}, records, analysis, fastRelinkConfig(), nil)

		results, err := runner.Run(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("got %d results, want 3", len(results))
		}
		if results[0].Err != nil || results[2].Err != nil {
			t.Errorf("healthy recipes failed: %v, %v", results[0].Err, results[2].Err)
		}
		if !errors.Is(results[1].Err, domain.ErrNoIngredientsFound) {
			t.Errorf("results[1].Err = %v, want ErrNoIngredientsFound", results[1].Err)
		}
	})

	t.Run("delete failure skips analysis for that recipe", func(t *testing.T) {
		recipes := recipesNamed("Soup")
		deleteErr := errors.New("deadlock detected")
		records := &fakeRecordRepo{deleteErr: deleteErr}
		analysis := newTestService(
			&fakeLineRepo{lines: map[uuid.UUID][]domain.RawIngredientLine{
				recipes[0].ID: {lineFor(recipes[0].ID, "1 onion")},
			}},
			&fakeCatalogRepo{catalog: catalogOf("onion")},
			records,
		)
		runner := NewRelinkRunner(&fakeRecipeRepo{unlinked: recipes}, records, analysis, fastRelinkConfig(), nil)

		results, err := runner.Run(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || !errors.Is(results[0].Err, deleteErr) {
			t.Fatalf("results = %+v, want one delete failure", results)
		}
		if len(records.inserted) != 0 {
			t.Errorf("inserted %d records after failed delete, want 0", len(records.inserted))
		}
	})

	t.Run("cancelled context stops the run", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		recipes := recipesNamed("Soup", "Stew")
		runner := NewRelinkRunner(&fakeRecipeRepo{unlinked: recipes}, &fakeRecordRepo{}, nil, fastRelinkConfig(), nil)

		_, err := runner.Run(cancelled)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
