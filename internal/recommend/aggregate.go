// Package recommend ranks catalog restaurants for a group of members.
//
// Scoring follows a weighted sum: how well a restaurant matches the group's
// combined cuisine, venue type and dish preferences, its rating, and how close
// its cost is to the group's median budget. The best candidates are then
// re-ranked by the distance of their closest branch to the group centroid.
package recommend

import (
	"math"
	"slices"
	"strings"

	"github.com/mmynk/meetnmeal/internal/models"
)

// Profile is the combined preference of a group.
type Profile struct {
	// Tag frequencies across all members. Nil when no member named any.
	Cuisines  map[string]int
	RestTypes map[string]int
	Dishes    map[string]int

	// Budget is the median of the non-zero member budgets, truncated to a
	// whole amount. Zero means no member gave a budget.
	Budget float64

	// Centroid is the mean of the members' resolved coordinates, or nil when
	// no member location resolves.
	Centroid *models.Coordinates
}

// Aggregate combines member preferences into a group profile. Named areas are
// resolved through areas, keyed by lower-case name; unknown areas are ignored.
func Aggregate(prefs []models.PreferenceSet, areas map[string]models.Coordinates) Profile {
	var p Profile
	var budgets []float64
	var lat, lng float64
	located := 0

	for _, pref := range prefs {
		p.Cuisines = count(p.Cuisines, pref.Cuisines)
		p.RestTypes = count(p.RestTypes, pref.RestTypes)
		p.Dishes = count(p.Dishes, pref.Dishes)
		if pref.Budget > 0 {
			budgets = append(budgets, pref.Budget)
		}
		if c, ok := resolve(pref.Location, areas); ok {
			lat += c.Lat
			lng += c.Lng
			located++
		}
	}

	p.Budget = math.Trunc(median(budgets))
	if located > 0 {
		p.Centroid = &models.Coordinates{Lat: lat / float64(located), Lng: lng / float64(located)}
	}
	return p
}

func count(counter map[string]int, tags []string) map[string]int {
	for _, t := range tags {
		if counter == nil {
			counter = make(map[string]int)
		}
		counter[t]++
	}
	return counter
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// resolve returns the coordinates a location selects. Explicit coordinates
// take precedence over an area name.
func resolve(loc models.Location, areas map[string]models.Coordinates) (models.Coordinates, bool) {
	if loc.Coords != nil {
		return *loc.Coords, true
	}
	if loc.Area == "" {
		return models.Coordinates{}, false
	}
	c, ok := areas[areaKey(loc.Area)]
	return c, ok
}

func areaKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
