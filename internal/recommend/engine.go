package recommend

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mmynk/meetnmeal/internal/compute"
	"github.com/mmynk/meetnmeal/internal/models"
	"github.com/mmynk/meetnmeal/internal/storage"
)

// Ensure Engine implements compute.Engine
var _ compute.Engine = (*Engine)(nil)

// Defaults
const (
	DefaultTopK          = 10
	DefaultCandidates    = 30
	DefaultMaxDistanceKm = 10.0
)

// Config tunes the engine. Zero values select the defaults.
type Config struct {
	// TopK is the length of the returned list.
	TopK int

	// Candidates is how many brands, by base score, are considered for the
	// distance re-rank.
	Candidates int

	// MaxDistanceKm drops brands whose closest branch is farther away.
	MaxDistanceKm float64
}

// Engine ranks restaurants from a catalog.
type Engine struct {
	catalog storage.Catalog
	cfg     Config
}

// NewEngine creates an engine reading from catalog.
func NewEngine(catalog storage.Catalog, cfg Config) *Engine {
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.Candidates <= 0 {
		cfg.Candidates = DefaultCandidates
	}
	if cfg.MaxDistanceKm <= 0 {
		cfg.MaxDistanceKm = DefaultMaxDistanceKm
	}
	return &Engine{catalog: catalog, cfg: cfg}
}

// Recommend returns up to TopK restaurants for the group, best first.
//
// When no member location resolves, brands are ranked by base score and the
// best-scoring branch of each is returned with no distance applied.
func (e *Engine) Recommend(ctx context.Context, prefs []models.PreferenceSet) ([]models.Recommendation, error) {
	restaurants, err := e.catalog.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	locations, err := e.catalog.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	areas := make(map[string]models.Coordinates, len(locations))
	for _, a := range locations {
		areas[areaKey(a.Name)] = a.Coords
	}

	profile := Aggregate(prefs, areas)
	scores := ScoreAll(profile, restaurants)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked := e.rank(profile, restaurants, scores, areas)
	slog.Debug("Ranked restaurants",
		"members", len(prefs),
		"catalog_size", len(restaurants),
		"results", len(ranked),
		"has_centroid", profile.Centroid != nil,
	)
	return ranked, nil
}

type brand struct {
	name     string
	base     float64
	branches []int
}

func (e *Engine) rank(p Profile, restaurants []models.Restaurant, scores []Scores, areas map[string]models.Coordinates) []models.Recommendation {
	// Group branches by brand; a brand's base score is its best branch's.
	byName := make(map[string]*brand)
	var brands []*brand
	for i, r := range restaurants {
		b, ok := byName[r.Name]
		if !ok {
			b = &brand{name: r.Name, base: -1}
			byName[r.Name] = b
			brands = append(brands, b)
		}
		b.branches = append(b.branches, i)
		b.base = max(b.base, scores[i].Base())
	}
	slices.SortStableFunc(brands, func(a, b *brand) int {
		return cmp.Compare(b.base, a.base)
	})
	if len(brands) > e.cfg.Candidates {
		brands = brands[:e.cfg.Candidates]
	}

	results := make([]models.Recommendation, 0, len(brands))
	for _, b := range brands {
		if p.Centroid == nil {
			best := b.branches[0]
			for _, i := range b.branches[1:] {
				if scores[i].Base() > scores[best].Base() {
					best = i
				}
			}
			results = append(results, models.Recommendation{Restaurant: restaurants[best], Score: b.base})
			continue
		}

		branch, km, ok := closestBranch(*p.Centroid, restaurants, b.branches, areas)
		if !ok || km > e.cfg.MaxDistanceKm {
			continue
		}
		ds := DistanceScore(km)
		results = append(results, models.Recommendation{
			Restaurant:    restaurants[branch],
			DistanceKm:    km,
			DistanceScore: ds,
			Score:         b.base + WeightDistance*ds,
		})
	}

	slices.SortStableFunc(results, func(a, b models.Recommendation) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(results) > e.cfg.TopK {
		results = results[:e.cfg.TopK]
	}
	return results
}

// closestBranch returns the branch nearest to from. Branches whose location
// is not a known area are skipped.
func closestBranch(from models.Coordinates, restaurants []models.Restaurant, branches []int, areas map[string]models.Coordinates) (int, float64, bool) {
	best, bestKm := -1, 0.0
	for _, i := range branches {
		c, ok := areas[areaKey(restaurants[i].Location)]
		if !ok {
			continue
		}
		km := Haversine(from, c)
		if best < 0 || km < bestKm {
			best, bestKm = i, km
		}
	}
	return best, bestKm, best >= 0
}
