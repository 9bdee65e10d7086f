package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MaxPreferenceTags bounds each tag list in a PreferenceSet.
const MaxPreferenceTags = 32

// PreferenceSet is what one member submitted.
type PreferenceSet struct {
	Cuisines  []string `json:"cuisines"`
	RestTypes []string `json:"rest_type"`
	Dishes    []string `json:"dish_pref"`
	Budget    float64  `json:"budget"`
	Location  Location `json:"location"`
}

// Location selects where a member wants to eat: either a named area from the
// catalog or an explicit coordinate pair.
type Location struct {
	Area   string       `json:"area,omitempty"`
	Coords *Coordinates `json:"coords,omitempty"`
}

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UnmarshalJSON accepts either a string area name or a {"lat","lng"} object.
func (l *Location) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = Location{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var area string
		if err := json.Unmarshal(data, &area); err != nil {
			return err
		}
		*l = Location{Area: area}
		return nil
	}
	var c Coordinates
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("location must be an area name or {lat,lng}: %w", err)
	}
	*l = Location{Coords: &c}
	return nil
}

// MarshalJSON writes the same shape UnmarshalJSON accepts.
func (l Location) MarshalJSON() ([]byte, error) {
	if l.Coords != nil {
		return json.Marshal(l.Coords)
	}
	return json.Marshal(l.Area)
}

// Normalize trims and lower-cases tags, drops empties and duplicates, and
// validates the budget and coordinates.
func (p PreferenceSet) Normalize() (PreferenceSet, error) {
	var err error
	out := PreferenceSet{Budget: p.Budget}
	if out.Cuisines, err = normalizeTags("cuisines", p.Cuisines); err != nil {
		return PreferenceSet{}, err
	}
	if out.RestTypes, err = normalizeTags("rest_type", p.RestTypes); err != nil {
		return PreferenceSet{}, err
	}
	if out.Dishes, err = normalizeTags("dish_pref", p.Dishes); err != nil {
		return PreferenceSet{}, err
	}
	if p.Budget < 0 {
		return PreferenceSet{}, fmt.Errorf("%w: budget must not be negative", ErrInvalidPreferences)
	}
	out.Location.Area = strings.ToLower(strings.TrimSpace(p.Location.Area))
	if c := p.Location.Coords; c != nil {
		if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
			return PreferenceSet{}, fmt.Errorf("%w: coordinates out of range", ErrInvalidPreferences)
		}
		cc := *c
		out.Location.Coords = &cc
	}
	return out, nil
}

// Clone returns a deep copy.
func (p PreferenceSet) Clone() PreferenceSet {
	out := p
	out.Cuisines = append([]string(nil), p.Cuisines...)
	out.RestTypes = append([]string(nil), p.RestTypes...)
	out.Dishes = append([]string(nil), p.Dishes...)
	if p.Location.Coords != nil {
		c := *p.Location.Coords
		out.Location.Coords = &c
	}
	return out
}

func normalizeTags(field string, tags []string) ([]string, error) {
	if len(tags) > MaxPreferenceTags {
		return nil, fmt.Errorf("%w: %s has more than %d entries", ErrInvalidPreferences, field, MaxPreferenceTags)
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}
