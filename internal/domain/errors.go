package domain

import "errors"

var (
	// ErrNoIngredientsFound is returned when a recipe has zero raw ingredient lines
	ErrNoIngredientsFound = errors.New("recipe has no ingredient lines")

	// ErrCatalogLoadFailed is returned when the ingredient catalog could not be loaded
	ErrCatalogLoadFailed = errors.New("ingredient catalog load failed")

	// ErrPersistFailed is returned when computed match records could not be written
	ErrPersistFailed = errors.New("match record persistence failed")

	// ErrRecipeNotFound is returned when the referenced recipe does not exist
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
