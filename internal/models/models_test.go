package models

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestPreferenceSet_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Location
		wantErr bool
	}{
		{"area name", `{"location":"HSR"}`, Location{Area: "HSR"}, false},
		{"coordinates", `{"location":{"lat":12.9,"lng":77.6}}`, Location{Coords: &Coordinates{Lat: 12.9, Lng: 77.6}}, false},
		{"null", `{"location":null}`, Location{}, false},
		{"missing", `{}`, Location{}, false},
		{"number", `{"location":42}`, Location{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PreferenceSet
			err := json.Unmarshal([]byte(tt.input), &p)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if !reflect.DeepEqual(p.Location, tt.want) {
				t.Errorf("Location = %+v, want %+v", p.Location, tt.want)
			}
		})
	}
}

func TestPreferenceSet_FullBody(t *testing.T) {
	body := `{"cuisines":["Thai"],"rest_type":["Cafe"],"dish_pref":["noodles"],"budget":700,"location":"HSR"}`
	var p PreferenceSet
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p.Budget != 700 || p.Cuisines[0] != "Thai" || p.RestTypes[0] != "Cafe" || p.Dishes[0] != "noodles" {
		t.Errorf("decoded: %+v", p)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(out), `"location":"HSR"`) {
		t.Errorf("location not written as a string: %s", out)
	}
}

func TestPreferenceSet_Normalize(t *testing.T) {
	tooMany := make([]string, MaxPreferenceTags+1)
	for i := range tooMany {
		tooMany[i] = strings.Repeat("x", i+1)
	}

	tests := []struct {
		name    string
		in      PreferenceSet
		want    PreferenceSet
		wantErr bool
	}{
		{
			name: "trims, lower-cases and de-duplicates",
			in: PreferenceSet{
				Cuisines: []string{" Thai", "thai ", "", "Chinese"},
				Budget:   500,
				Location: Location{Area: " HSR "},
			},
			want: PreferenceSet{
				Cuisines:  []string{"thai", "chinese"},
				RestTypes: []string{},
				Dishes:    []string{},
				Budget:    500,
				Location:  Location{Area: "hsr"},
			},
		},
		{
			name:    "negative budget",
			in:      PreferenceSet{Budget: -1},
			wantErr: true,
		},
		{
			name:    "too many tags",
			in:      PreferenceSet{Dishes: tooMany},
			wantErr: true,
		},
		{
			name:    "latitude out of range",
			in:      PreferenceSet{Location: Location{Coords: &Coordinates{Lat: 91}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Normalize()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPreferences) {
					t.Fatalf("expected ErrInvalidPreferences, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEvent_MarshalJSON(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{UserJoined{JoinedCount: 2, ReadyCount: 1}, `{"type":"USER_JOINED","joined_count":2,"ready_count":1}`},
		{UserReady{ReadyCount: 3}, `{"type":"USER_READY","ready_count":3}`},
		{SessionClosing{TimeLeft: 0}, `{"type":"SESSION_CLOSING","time_left":0}`},
		{SessionExpired{Reason: "Session Closed"}, `{"type":"SESSION_EXPIRED","reason":"Session Closed"}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.event.Type()), func(t *testing.T) {
			got, err := json.Marshal(tt.event)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecommendation_JSON(t *testing.T) {
	rec := Recommendation{
		Restaurant: Restaurant{
			ID:        "r1",
			Name:      "Truffles",
			Cuisines:  []string{"cafe", "american"},
			RestTypes: []string{"Casual Dining"},
			Cost:      900,
			Rating:    4.7,
			Location:  "Koramangala",
		},
		DistanceKm:    1.5,
		DistanceScore: 0.4,
		Score:         0.8,
	}
	got, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"name":"Truffles","cuisines":"cafe, american","rest_type":"Casual Dining","cost":900,"location":"Koramangala","rate":4.7,"distance_km":1.5,"distance_score":0.4,"final_score_adjusted":0.8}`
	if string(got) != want {
		t.Errorf("Marshal = %s\nwant       %s", got, want)
	}

	var back Recommendation
	if err := json.Unmarshal(got, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back.Name != "Truffles" || back.Score != 0.8 || back.Location != "Koramangala" {
		t.Errorf("Unmarshal = %+v", back)
	}
	if len(back.Cuisines) != 2 || back.Cuisines[1] != "american" || len(back.RestTypes) != 1 {
		t.Errorf("tags did not survive: %v %v", back.Cuisines, back.RestTypes)
	}
}

func TestRecommendation_JSONEmptyTags(t *testing.T) {
	got, err := json.Marshal(Recommendation{Restaurant: Restaurant{Name: "A"}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(got, &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if m["cuisines"] != "" || m["rest_type"] != "" {
		t.Errorf("empty tags should be empty strings: %s", got)
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"thai", []string{"thai"}},
		{"thai, chinese", []string{"thai", "chinese"}},
		{" thai ,, chinese ,", []string{"thai", "chinese"}},
	}
	for _, tt := range tests {
		got := SplitTags(tt.in)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("SplitTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGroupSession_Clone(t *testing.T) {
	s := NewGroupSession("ABC234", time.Now())
	s.Members["u1"] = &Member{UserID: "u1", JoinedAt: 1, Preferences: &PreferenceSet{Cuisines: []string{"thai"}}}
	s.Order = []string{"u1"}

	c := s.Clone()
	c.Members["u1"].Preferences.Cuisines[0] = "changed"
	c.Order[0] = "changed"

	if s.Members["u1"].Preferences.Cuisines[0] != "thai" || s.Order[0] != "u1" {
		t.Error("Clone shares memory with the original")
	}
}
