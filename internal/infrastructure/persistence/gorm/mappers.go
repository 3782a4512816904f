package gorm

import (
	"github.com/platewise/backend/internal/domain"
)

func recipeToDomain(m *RecipeModel) *domain.Recipe {
	return &domain.Recipe{
		ID:    m.ID,
		Title: m.Title,
	}
}

func lineToDomain(m *IngredientLineModel) domain.RawIngredientLine {
	return domain.RawIngredientLine{
		ID:       m.ID,
		RecipeID: m.RecipeID,
		RawText:  m.RawText,
		Amount:   m.Amount,
		Unit:     m.Unit,
	}
}

func catalogToDomain(m *CatalogIngredientModel) domain.CatalogIngredient {
	return domain.CatalogIngredient{
		ID:         m.ID,
		Name:       m.Name,
		CategoryID: m.CategoryID,
	}
}

func matchRecordToModel(r *domain.MatchRecord) MatchRecordModel {
	return MatchRecordModel{
		ID:                  r.ID,
		RecipeID:            r.RecipeID,
		RawIngredientLineID: r.RawIngredientLineID,
		CatalogIngredientID: r.CatalogIngredientID,
		OriginalText:        r.OriginalText,
		MatchedTerm:         r.MatchedTerm,
		MatchType:           string(r.MatchType),
		MatchedAlias:        r.MatchedAlias,
		CreatedAt:           r.CreatedAt,
	}
}

func matchRecordToDomain(m *MatchRecordModel) domain.MatchRecord {
	return domain.MatchRecord{
		ID:                  m.ID,
		RecipeID:            m.RecipeID,
		RawIngredientLineID: m.RawIngredientLineID,
		CatalogIngredientID: m.CatalogIngredientID,
		OriginalText:        m.OriginalText,
		MatchedTerm:         m.MatchedTerm,
		MatchType:           domain.MatchType(m.MatchType),
		MatchedAlias:        m.MatchedAlias,
		CreatedAt:           m.CreatedAt,
	}
}
