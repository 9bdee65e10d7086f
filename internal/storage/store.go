// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/meetnmeal/internal/models"
)

// Catalog is the restaurant data the recommendation engine ranks.
type Catalog interface {
	// ListRestaurants returns every branch in the catalog.
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)

	// ListLocations returns every named area with its coordinates.
	// Area names are lower-case.
	ListLocations(ctx context.Context) ([]models.Area, error)

	// ImportRestaurants inserts or replaces branches.
	// Restaurants without an ID get one assigned.
	ImportRestaurants(ctx context.Context, restaurants []models.Restaurant) error

	// ImportLocations inserts or replaces named areas.
	ImportLocations(ctx context.Context, areas []models.Area) error
}

// Archive keeps summaries of finished sessions.
type Archive interface {
	// ArchiveSession stores the record of a destroyed session.
	ArchiveSession(ctx context.Context, rec *models.SessionRecord) error

	// GetSessionRecord returns the most recent record for a session code.
	// Returns nil and an error wrapping models.ErrNotFound if there is none.
	GetSessionRecord(ctx context.Context, id string) (*models.SessionRecord, error)
}

// Store defines the interface for catalog and archive storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	Catalog
	Archive

	// Close releases any resources held by the store.
	Close() error
}
