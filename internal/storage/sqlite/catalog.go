package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mmynk/meetnmeal/internal/models"
)

// ListRestaurants returns every branch in the catalog, ordered by name.
func (s *SQLiteStore) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, cuisines, rest_types, dishes, cost, rating, location
		 FROM restaurants ORDER BY name, location`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var r models.Restaurant
		var cuisines, restTypes, dishes string
		if err := rows.Scan(&r.ID, &r.Name, &cuisines, &restTypes, &dishes, &r.Cost, &r.Rating, &r.Location); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		r.Cuisines = splitList(cuisines)
		r.RestTypes = splitList(restTypes)
		r.Dishes = splitList(dishes)
		restaurants = append(restaurants, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurants: %w", err)
	}

	return restaurants, nil
}

// ImportRestaurants inserts or replaces branches in one transaction.
func (s *SQLiteStore) ImportRestaurants(ctx context.Context, restaurants []models.Restaurant) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO restaurants (id, name, cuisines, rest_types, dishes, cost, rating, location)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare restaurant insert: %w", err)
	}
	defer stmt.Close()

	for i := range restaurants {
		r := &restaurants[i]
		if r.ID == "" {
			r.ID = uuid.New().String()
		}
		_, err := stmt.ExecContext(ctx,
			r.ID, r.Name, joinList(r.Cuisines), joinList(r.RestTypes), joinList(r.Dishes),
			r.Cost, r.Rating, r.Location,
		)
		if err != nil {
			return fmt.Errorf("failed to insert restaurant %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListLocations returns every named area.
func (s *SQLiteStore) ListLocations(ctx context.Context) ([]models.Area, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, lat, lng FROM locations ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var areas []models.Area
	for rows.Next() {
		var a models.Area
		if err := rows.Scan(&a.Name, &a.Coords.Lat, &a.Coords.Lng); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}

	return areas, nil
}

// ImportLocations inserts or replaces named areas. Names are stored
// lower-case so lookups are case-insensitive.
func (s *SQLiteStore) ImportLocations(ctx context.Context, areas []models.Area) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, a := range areas {
		name := strings.ToLower(strings.TrimSpace(a.Name))
		if name == "" {
			continue
		}
		_, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO locations (name, lat, lng) VALUES (?, ?, ?)",
			name, a.Coords.Lat, a.Coords.Lng,
		)
		if err != nil {
			return fmt.Errorf("failed to insert location %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
