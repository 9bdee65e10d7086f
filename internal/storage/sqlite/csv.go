package sqlite

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mmynk/meetnmeal/internal/models"
)

// Header aliases accepted by ImportRestaurantsCSV. The first alias present wins.
var restaurantColumns = map[string][]string{
	"name":      {"name"},
	"cuisines":  {"cuisines"},
	"rest_type": {"rest_type", "rest_types"},
	"dishes":    {"dish_liked", "dishes"},
	"cost":      {"approx_cost(for two people)", "cost"},
	"rating":    {"meanrating", "rate", "rating"},
	"location":  {"location"},
}

// ImportRestaurantsCSV loads branches from a CSV file with a header row and
// returns how many were imported. List cells are comma separated; ratings
// may be written as "4.1/5". Rows without a name are skipped.
func (s *SQLiteStore) ImportRestaurantsCSV(ctx context.Context, r io.Reader) (int, error) {
	records, cols, err := readCSV(r, restaurantColumns, "name", "location")
	if err != nil {
		return 0, err
	}

	restaurants := make([]models.Restaurant, 0, len(records))
	for i, rec := range records {
		name := strings.TrimSpace(cell(rec, cols, "name"))
		if name == "" {
			continue
		}
		cost, err := parseNumber(cell(rec, cols, "cost"))
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid cost: %w", i+2, err)
		}
		rating, err := parseNumber(strings.TrimSuffix(strings.TrimSpace(cell(rec, cols, "rating")), "/5"))
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid rating: %w", i+2, err)
		}
		restaurants = append(restaurants, models.Restaurant{
			Name:      name,
			Cuisines:  tags(cell(rec, cols, "cuisines")),
			RestTypes: tags(cell(rec, cols, "rest_type")),
			Dishes:    tags(cell(rec, cols, "dishes")),
			Cost:      cost,
			Rating:    rating,
			Location:  strings.TrimSpace(cell(rec, cols, "location")),
		})
	}

	if err := s.ImportRestaurants(ctx, restaurants); err != nil {
		return 0, err
	}
	return len(restaurants), nil
}

var locationColumns = map[string][]string{
	"location":  {"location", "name"},
	"latitude":  {"latitude", "lat"},
	"longitude": {"longitude", "lng", "lon"},
}

// ImportLocationsCSV loads named areas from a CSV file with the header
// location,latitude,longitude and returns how many were imported.
func (s *SQLiteStore) ImportLocationsCSV(ctx context.Context, r io.Reader) (int, error) {
	records, cols, err := readCSV(r, locationColumns, "location", "latitude", "longitude")
	if err != nil {
		return 0, err
	}

	areas := make([]models.Area, 0, len(records))
	for i, rec := range records {
		name := strings.TrimSpace(cell(rec, cols, "location"))
		if name == "" {
			continue
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(cell(rec, cols, "latitude")), 64)
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid latitude: %w", i+2, err)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(cell(rec, cols, "longitude")), 64)
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid longitude: %w", i+2, err)
		}
		areas = append(areas, models.Area{Name: name, Coords: models.Coordinates{Lat: lat, Lng: lng}})
	}

	if err := s.ImportLocations(ctx, areas); err != nil {
		return 0, err
	}
	return len(areas), nil
}

// readCSV reads all rows and resolves the header against the aliases.
func readCSV(r io.Reader, aliases map[string][]string, required ...string) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, errors.New("empty csv file")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	cols := make(map[string]int, len(aliases))
	for key, names := range aliases {
		for _, name := range names {
			if i, ok := index[name]; ok {
				cols[key] = i
				break
			}
		}
	}
	for _, key := range required {
		if _, ok := cols[key]; !ok {
			return nil, nil, fmt.Errorf("csv header is missing column %q", key)
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return records, cols, nil
}

func cell(rec []string, cols map[string]int, key string) string {
	i, ok := cols[key]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// tags splits a list cell into lower-case, de-duplicated values.
func tags(value string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(value, ",") {
		t := strings.ToLower(strings.TrimSpace(part))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// parseNumber reads values like "1,200" or "4.1". Blank and "NEW" or "-"
// placeholders read as zero.
func parseNumber(value string) (float64, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	switch strings.ToUpper(value) {
	case "", "NEW", "-":
		return 0, nil
	}
	return strconv.ParseFloat(value, 64)
}
