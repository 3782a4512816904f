package usecase

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/platewise/backend/internal/domain"
)

func catalogOf(names ...string) []domain.CatalogIngredient {
	catalog := make([]domain.CatalogIngredient, 0, len(names))
	for _, name := range names {
		catalog = append(catalog, domain.CatalogIngredient{
			ID:         uuid.New(),
			Name:       name,
			CategoryID: uuid.New(),
		})
	}
	return catalog
}

func newTestMatcher() *CatalogMatcher {
	return NewCatalogMatcher(MatchConfig{}, nil)
}

func TestNewCatalogMatcher(t *testing.T) {
	t.Run("applies defaults when config is zero", func(t *testing.T) {
		m := NewCatalogMatcher(MatchConfig{}, nil)
		if m.minScore != 0.3 {
			t.Errorf("minScore = %v, want 0.3", m.minScore)
		}
		if m.exactThreshold != 0.95 {
			t.Errorf("exactThreshold = %v, want 0.95", m.exactThreshold)
		}
	})

	t.Run("keeps provided thresholds", func(t *testing.T) {
		m := NewCatalogMatcher(MatchConfig{MinScore: 0.5, ExactThreshold: 0.99}, nil)
		if m.minScore != 0.5 {
			t.Errorf("minScore = %v, want 0.5", m.minScore)
		}
		if m.exactThreshold != 0.99 {
			t.Errorf("exactThreshold = %v, want 0.99", m.exactThreshold)
		}
	})
}

func TestMatchExact(t *testing.T) {
	m := newTestMatcher()

	t.Run("matches raw text exactly", func(t *testing.T) {
		catalog := catalogOf("onion", "garlic")
		got := m.Match("onion", catalog)
		if got == nil {
			t.Fatal("Match returned nil, want exact match")
		}
		if got.Ingredient.Name != "onion" || got.Score != 1.0 {
			t.Errorf("got %q score %v, want onion score 1.0", got.Ingredient.Name, got.Score)
		}
	})

	t.Run("lowercases raw text before comparing", func(t *testing.T) {
		catalog := catalogOf("onion")
		got := m.Match("Onion", catalog)
		if got == nil || got.Score != 1.0 {
			t.Fatalf("Match(\"Onion\") = %+v, want exact match", got)
		}
	})

	t.Run("matches normalized text exactly", func(t *testing.T) {
		catalog := catalogOf("onion")
		got := m.Match("2 cups diced yellow onion", catalog)
		if got == nil {
			t.Fatal("Match returned nil, want exact match on normalized text")
		}
		if got.Score != 1.0 {
			t.Errorf("score = %v, want 1.0", got.Score)
		}
	})

	t.Run("exact match beats earlier containment candidate", func(t *testing.T) {
		// "green onion" is scanned first and scores as a containment
		// candidate, but the later exact hit must win.
		catalog := catalogOf("green onion", "onion")
		got := m.Match("onion", catalog)
		if got == nil {
			t.Fatal("Match returned nil")
		}
		if got.Ingredient.Name != "onion" {
			t.Errorf("matched %q, want onion", got.Ingredient.Name)
		}
		if got.Score != 1.0 {
			t.Errorf("score = %v, want 1.0", got.Score)
		}
	})
}

func TestMatchPlural(t *testing.T) {
	m := newTestMatcher()

	t.Run("normalized plural matches singular catalog name", func(t *testing.T) {
		catalog := catalogOf("onion", "green onion")
		got := m.Match("diced yellow onions", catalog)
		if got == nil {
			t.Fatal("Match returned nil")
		}
		if got.Ingredient.Name != "onion" {
			t.Errorf("matched %q, want onion", got.Ingredient.Name)
		}
		if got.Score != 0.9 {
			t.Errorf("score = %v, want 0.9", got.Score)
		}
	})

	t.Run("plural catalog name matches singular text", func(t *testing.T) {
		catalog := catalogOf("beans")
		got := m.Match("bean", catalog)
		if got == nil {
			t.Fatal("Match returned nil")
		}
		if got.Score != 0.9 {
			t.Errorf("score = %v, want 0.9", got.Score)
		}
	})
}

func TestMatchContainment(t *testing.T) {
	m := newTestMatcher()

	t.Run("catalog name contained in normalized text", func(t *testing.T) {
		catalog := catalogOf("chicken stock")
		got := m.Match("chicken stock homemade", catalog)
		if got == nil {
			t.Fatal("Match returned nil")
		}
		want := float64(len("chicken stock")) / float64(len("chicken stock homemade"))
		if math.Abs(got.Score-want) > 1e-9 {
			t.Errorf("score = %v, want %v", got.Score, want)
		}
	})

	t.Run("normalized text contained in catalog name", func(t *testing.T) {
		catalog := catalogOf("chicken stock")
		got := m.Match("stock", catalog)
		if got == nil {
			t.Fatal("Match returned nil")
		}
		want := float64(len("stock")) / float64(len("chicken stock"))
		if math.Abs(got.Score-want) > 1e-9 {
			t.Errorf("score = %v, want %v", got.Score, want)
		}
	})

	t.Run("tied scores keep the first entry scanned", func(t *testing.T) {
		catalog := catalogOf("basil", "bagel")
		got := m.Match("basil bagel mix", catalog)
		if got == nil {
			t.Fatal("Match returned nil")
		}
		if got.Ingredient.Name != "basil" {
			t.Errorf("matched %q, want basil (first entry wins ties)", got.Ingredient.Name)
		}
	})
}

func TestMatchRawPartial(t *testing.T) {
	m := newTestMatcher()

	// Normalization strips "green", so the normalized strategies miss,
	// but the raw lowercased text still contains the catalog name.
	catalog := catalogOf("green onion")
	got := m.Match("2 green onions", catalog)
	if got == nil {
		t.Fatal("Match returned nil, want raw partial match")
	}
	rawLen := len("2 green onions")
	nameLen := len("green onion")
	want := float64(nameLen) / float64(rawLen)
	if math.Abs(got.Score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got.Score, want)
	}
}

func TestMatchFloor(t *testing.T) {
	m := newTestMatcher()

	t.Run("rejects scores at or below the floor", func(t *testing.T) {
		// "basil" inside a much longer name scores well below 0.3.
		catalog := catalogOf("basil infused olive oil blend")
		got := m.Match("basil", catalog)
		if got != nil {
			t.Errorf("Match = %+v, want nil for score below floor", got)
		}
	})

	t.Run("returns nil when nothing resembles the input", func(t *testing.T) {
		catalog := catalogOf("onion", "garlic", "bell pepper")
		got := m.Match("1 dragonfruit", catalog)
		if got != nil {
			t.Errorf("Match = %+v, want nil", got)
		}
	})
}

func TestMatchEmptyInputs(t *testing.T) {
	m := newTestMatcher()

	t.Run("empty raw text never matches", func(t *testing.T) {
		catalog := catalogOf("onion", "garlic")
		if got := m.Match("", catalog); got != nil {
			t.Errorf("Match(\"\") = %+v, want nil", got)
		}
	})

	t.Run("all-noise text never matches", func(t *testing.T) {
		// Normalizes to ""; the empty string is a substring of every
		// name, so the partial strategies must be guarded.
		catalog := catalogOf("onion", "garlic")
		if got := m.Match("2 cups", catalog); got != nil {
			t.Errorf("Match(\"2 cups\") = %+v, want nil", got)
		}
	})

	t.Run("noise word inside a catalog name never matches", func(t *testing.T) {
		// "dried" normalizes to "" yet is a literal substring of the
		// catalog name, so the raw fallback must honor the guard too.
		catalog := catalogOf("dried oregano")
		if got := m.Match("dried", catalog); got != nil {
			t.Errorf("Match(\"dried\") = %+v, want nil", got)
		}
	})

	t.Run("empty catalog returns nil", func(t *testing.T) {
		if got := m.Match("onion", nil); got != nil {
			t.Errorf("Match with empty catalog = %+v, want nil", got)
		}
	})
}

func TestClassify(t *testing.T) {
	m := newTestMatcher()

	testCases := []struct {
		score float64
		want  domain.MatchType
	}{
		{1.0, domain.MatchTypeExact},
		{0.95, domain.MatchTypeExact},
		{0.9, domain.MatchTypeAlias},
		{0.31, domain.MatchTypeAlias},
	}

	for _, tc := range testCases {
		if got := m.Classify(tc.score); got != tc.want {
			t.Errorf("Classify(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}
