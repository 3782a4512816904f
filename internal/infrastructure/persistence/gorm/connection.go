package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/platewise/backend/config"
)

// Open connects to PostgreSQL using the configured DSN parts.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the tables the matching core owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&RecipeModel{},
		&IngredientLineModel{},
		&CatalogIngredientModel{},
		&MatchRecordModel{},
	)
}
