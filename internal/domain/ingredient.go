package domain

import (
	"time"

	"github.com/google/uuid"
)

// MatchType classifies how confidently a raw ingredient line was linked
// to a catalog entry.
type MatchType string

const (
	// MatchTypeExact means near-certain lexical identity (score >= exact threshold).
	MatchTypeExact MatchType = "exact"
	// MatchTypeAlias means the line was linked via plural/containment heuristics.
	MatchTypeAlias MatchType = "alias"
)

// Recipe is the owning record for a set of raw ingredient lines.
// Only the fields the matching core needs are carried here.
type Recipe struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// RawIngredientLine is a free-text ingredient phrase as entered or
// scraped, before any normalization. Amount and Unit are optional
// pre-split quantity fields supplied by the import flow; the matching
// core never mutates a line.
type RawIngredientLine struct {
	ID       uuid.UUID `json:"id"`
	RecipeID uuid.UUID `json:"recipeId"`
	RawText  string    `json:"rawText"`
	Amount   string    `json:"amount,omitempty"`
	Unit     string    `json:"unit,omitempty"`
}

// CatalogIngredient is one canonical ingredient concept from the
// reference catalog. Name is stored lowercase and is the match target.
type CatalogIngredient struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"categoryId"`
}

// MatchRecord links a raw ingredient line to the catalog entry it was
// matched against, preserving provenance for downstream review.
// A record only exists for lines that matched above the acceptance
// floor; unmatched lines are reported as text, not as records.
type MatchRecord struct {
	ID                  uuid.UUID `json:"id"`
	RecipeID            uuid.UUID `json:"recipeId"`
	RawIngredientLineID uuid.UUID `json:"rawIngredientLineId"`
	CatalogIngredientID uuid.UUID `json:"catalogIngredientId"`
	OriginalText        string    `json:"originalText"`
	MatchedTerm         string    `json:"matchedTerm"`
	MatchType           MatchType `json:"matchType"`
	// MatchedAlias records which alternate form triggered the match.
	// Populated only for alias matches, nil for exact ones.
	MatchedAlias *string   `json:"matchedAlias"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AnalysisReport summarizes one matching pass over a recipe's lines.
// Unmatched holds the verbatim raw text of lines that scored below the
// acceptance floor, for human review.
type AnalysisReport struct {
	RecipeID       uuid.UUID `json:"recipeId"`
	MatchedCount   int       `json:"matchedCount"`
	UnmatchedCount int       `json:"unmatchedCount"`
	Unmatched      []string  `json:"unmatched"`
}
