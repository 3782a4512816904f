// Package gorm provides the GORM models and repository implementations
// backing the ingredient matching core.
package gorm

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel is the slice of the recipes table the matching core needs.
type RecipeModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for recipes
func (RecipeModel) TableName() string {
	return "recipes"
}

// IngredientLineModel stores one raw ingredient line of a recipe.
type IngredientLineModel struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	RecipeID uuid.UUID `gorm:"type:char(36);not null;index"`
	RawText  string    `gorm:"type:text;not null"`
	Amount   string    `gorm:"type:varchar(50)"`
	Unit     string    `gorm:"type:varchar(50)"`

	Position  int `gorm:"default:0"`
	CreatedAt time.Time
}

// TableName returns the table name for raw ingredient lines
func (IngredientLineModel) TableName() string {
	return "recipe_ingredients"
}

// CatalogIngredientModel is one canonical ingredient in the reference
// catalog. CreatedAt orders the catalog scan, which the matcher's
// first-entry-wins tie-break depends on.
type CatalogIngredientModel struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CategoryID uuid.UUID `gorm:"type:char(36);index"`
	CreatedAt  time.Time
}

// TableName returns the table name for catalog ingredients
func (CatalogIngredientModel) TableName() string {
	return "ingredients"
}

// MatchRecordModel stores the provenance of one line-to-catalog match.
type MatchRecordModel struct {
	ID                  uuid.UUID `gorm:"type:char(36);primaryKey"`
	RecipeID            uuid.UUID `gorm:"type:char(36);not null;index"`
	RawIngredientLineID uuid.UUID `gorm:"type:char(36);not null"`
	CatalogIngredientID uuid.UUID `gorm:"type:char(36);not null;index"`
	OriginalText        string    `gorm:"type:text;not null"`
	MatchedTerm         string    `gorm:"type:varchar(255);not null"`
	MatchType           string    `gorm:"type:varchar(10);not null"`
	MatchedAlias        *string   `gorm:"type:varchar(255)"`
	CreatedAt           time.Time
}

// TableName returns the table name for match records
func (MatchRecordModel) TableName() string {
	return "ingredient_matches"
}
