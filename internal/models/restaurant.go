package models

import (
	"encoding/json"
	"strings"
)

// Restaurant is one branch from the restaurant catalog. Branches of the same
// brand share a Name and differ by Location.
type Restaurant struct {
	ID        string
	Name      string
	Cuisines  []string
	RestTypes []string

	// Dishes are the popular dish terms listed for the restaurant.
	Dishes []string

	// Cost is the approximate cost for two people.
	Cost float64

	// Rating is the mean rating on a 0-5 scale.
	Rating float64

	// Location is the area label, matched against the locations table.
	Location string
}

// Recommendation is a ranked result entry.
type Recommendation struct {
	Restaurant

	DistanceKm    float64
	DistanceScore float64
	Score         float64
}

// Area maps a named area to its coordinates.
type Area struct {
	Name   string
	Coords Coordinates
}

// recommendationJSON is the wire shape of a result entry.
type recommendationJSON struct {
	Name          string  `json:"name"`
	Cuisines      string  `json:"cuisines"`
	RestTypes     string  `json:"rest_type"`
	Cost          float64 `json:"cost"`
	Location      string  `json:"location"`
	Rating        float64 `json:"rate"`
	DistanceKm    float64 `json:"distance_km"`
	DistanceScore float64 `json:"distance_score"`
	Score         float64 `json:"final_score_adjusted"`
}

// MarshalJSON writes the flat result-entry shape. Tag lists are joined with
// ", ".
func (r Recommendation) MarshalJSON() ([]byte, error) {
	return json.Marshal(recommendationJSON{
		Name:          r.Name,
		Cuisines:      JoinTags(r.Cuisines),
		RestTypes:     JoinTags(r.RestTypes),
		Cost:          r.Cost,
		Location:      r.Location,
		Rating:        r.Rating,
		DistanceKm:    r.DistanceKm,
		DistanceScore: r.DistanceScore,
		Score:         r.Score,
	})
}

// UnmarshalJSON reads the shape written by MarshalJSON.
func (r *Recommendation) UnmarshalJSON(data []byte) error {
	var v recommendationJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Recommendation{
		Restaurant: Restaurant{
			Name:      v.Name,
			Cuisines:  SplitTags(v.Cuisines),
			RestTypes: SplitTags(v.RestTypes),
			Cost:      v.Cost,
			Rating:    v.Rating,
			Location:  v.Location,
		},
		DistanceKm:    v.DistanceKm,
		DistanceScore: v.DistanceScore,
		Score:         v.Score,
	}
	return nil
}

// JoinTags renders a tag list the way result entries carry it.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// SplitTags reverses JoinTags, dropping empty entries.
func SplitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
