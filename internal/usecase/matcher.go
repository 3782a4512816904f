package usecase

import (
	"strings"

	"go.uber.org/zap"

	"github.com/platewise/backend/internal/domain"
)

// Score constants for the short-circuiting strategies.
const (
	scoreExact  = 1.0
	scorePlural = 0.9
)

// Default thresholds, used when the config leaves them unset.
const (
	defaultMinScore       = 0.3
	defaultExactThreshold = 0.95
)

// MatchConfig holds configuration for the catalog matcher
type MatchConfig struct {
	// MinScore is the acceptance floor: no match at or below it is ever returned.
	MinScore float64
	// ExactThreshold is the score at or above which a match is classified exact.
	ExactThreshold     float64
	EnableDebugLogging bool
}

// MatchCandidate is the winning catalog entry for a raw line, with the
// score that selected it.
type MatchCandidate struct {
	Ingredient domain.CatalogIngredient
	Score      float64
}

// CatalogMatcher scores a raw ingredient phrase against every catalog
// entry using layered strategies: exact and singular/plural checks are
// cheap and unambiguous so they short-circuit the scan; containment and
// raw partial matches are length-ratio scored against the running best.
// Ties keep whichever entry was encountered first — an accepted,
// order-dependent ambiguity, so callers must present the catalog in
// stable order.
type CatalogMatcher struct {
	minScore       float64
	exactThreshold float64
	debug          bool
	logger         *zap.Logger
}

// NewCatalogMatcher creates a matcher with the given configuration
func NewCatalogMatcher(config MatchConfig, logger *zap.Logger) *CatalogMatcher {
	minScore := config.MinScore
	if minScore <= 0 {
		minScore = defaultMinScore
	}

	exactThreshold := config.ExactThreshold
	if exactThreshold <= 0 {
		exactThreshold = defaultExactThreshold
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &CatalogMatcher{
		minScore:       minScore,
		exactThreshold: exactThreshold,
		debug:          config.EnableDebugLogging,
		logger:         logger,
	}
}

// Match runs the normalizer on rawText and scans the catalog for the
// best-scoring entry. Returns nil when no entry scores above the
// acceptance floor, when the catalog is empty, or when normalization
// leaves nothing to compare ("" is a substring of everything, so the
// partial strategies must never see it).
func (m *CatalogMatcher) Match(rawText string, catalog []domain.CatalogIngredient) *MatchCandidate {
	rawLower := strings.ToLower(strings.TrimSpace(rawText))
	normalized := Normalize(rawText)

	if m.debug {
		m.logger.Debug("matching ingredient",
			zap.String("raw", rawText),
			zap.String("normalized", normalized),
			zap.Int("catalog_size", len(catalog)))
	}

	var best *MatchCandidate
	for i := range catalog {
		name := catalog[i].Name
		if name == "" {
			continue
		}

		// Exact match against either the raw lowercased text or the
		// normalized text. Stops the scan: a perfect lexical match must
		// never be displaced by a longer containment coincidence later
		// in the catalog.
		if name == rawLower || name == normalized {
			return &MatchCandidate{Ingredient: catalog[i], Score: scoreExact}
		}

		// An all-noise phrase has nothing left to compare. Only the
		// exact check above may run on it: every partial strategy,
		// including the raw fallback, must stay behind this guard or a
		// noise word that happens to sit inside a catalog name would
		// produce a match.
		if normalized == "" {
			continue
		}

		// Singular/plural in either direction, also short-circuits.
		if strings.HasSuffix(normalized, "s") && strings.TrimSuffix(normalized, "s") == name {
			return &MatchCandidate{Ingredient: catalog[i], Score: scorePlural}
		}
		if strings.HasSuffix(name, "s") && strings.TrimSuffix(name, "s") == normalized {
			return &MatchCandidate{Ingredient: catalog[i], Score: scorePlural}
		}

		// Containment, both directions. The length ratio penalizes
		// large length mismatches so a short catalog term does not
		// win just by being contained in a long phrase.
		if strings.Contains(normalized, name) {
			best = m.consider(best, catalog[i], float64(len(name))/float64(len(normalized)))
		} else if strings.Contains(name, normalized) {
			best = m.consider(best, catalog[i], float64(len(normalized))/float64(len(name)))
		}

		// Raw partial match against the unnormalized lowercased text.
		if strings.Contains(rawLower, name) || strings.Contains(name, rawLower) {
			shorter, longer := len(name), len(rawLower)
			if shorter > longer {
				shorter, longer = longer, shorter
			}
			best = m.consider(best, catalog[i], float64(shorter)/float64(longer))
		}
	}

	if best != nil && m.debug {
		m.logger.Debug("best match",
			zap.String("raw", rawText),
			zap.String("matched", best.Ingredient.Name),
			zap.Float64("score", best.Score))
	}

	return best
}

// consider keeps candidate only if it beats the running best and clears
// the acceptance floor. Strict comparisons on both: ties keep the first
// entry encountered, and a score equal to the floor is rejected.
func (m *CatalogMatcher) consider(best *MatchCandidate, entry domain.CatalogIngredient, score float64) *MatchCandidate {
	if score <= m.minScore {
		return best
	}
	if best != nil && score <= best.Score {
		return best
	}
	return &MatchCandidate{Ingredient: entry, Score: score}
}

// Classify maps a match score to its confidence class.
func (m *CatalogMatcher) Classify(score float64) domain.MatchType {
	if score >= m.exactThreshold {
		return domain.MatchTypeExact
	}
	return domain.MatchTypeAlias
}
