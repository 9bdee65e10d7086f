package recommend

import (
	"math"

	"github.com/mmynk/meetnmeal/internal/models"
)

// Score weights. The base score is the weighted sum of the five match scores;
// the distance weight is added on top for candidates within range.
const (
	WeightCuisine  = 0.35
	WeightRestType = 0.20
	WeightDish     = 0.25
	WeightRating   = 0.10
	WeightCost     = 0.10
	WeightDistance = 0.30
)

// Scores holds the component scores of one restaurant, each in [0, 1].
type Scores struct {
	Cuisine  float64
	RestType float64
	Dish     float64
	Rating   float64
	Cost     float64
}

// Base returns the weighted sum of the component scores.
func (s Scores) Base() float64 {
	return WeightCuisine*s.Cuisine +
		WeightRestType*s.RestType +
		WeightDish*s.Dish +
		WeightRating*s.Rating +
		WeightCost*s.Cost
}

// ScoreAll scores every restaurant against the profile. Cuisine and venue-type
// scores are normalised by their maximum over the whole catalog.
func ScoreAll(p Profile, restaurants []models.Restaurant) []Scores {
	scores := make([]Scores, len(restaurants))
	var maxCuisine, maxRestType float64

	for i, r := range restaurants {
		s := &scores[i]
		s.Cuisine = tagWeight(p.Cuisines, r.Cuisines)
		s.RestType = tagWeight(p.RestTypes, r.RestTypes)
		s.Dish = dishScore(p.Dishes, r.Dishes)
		s.Rating = ratingScore(r.Rating)
		s.Cost = costScore(r.Cost, p.Budget)
		maxCuisine = math.Max(maxCuisine, s.Cuisine)
		maxRestType = math.Max(maxRestType, s.RestType)
	}

	for i := range scores {
		if maxCuisine > 0 {
			scores[i].Cuisine /= maxCuisine
		}
		if maxRestType > 0 {
			scores[i].RestType /= maxRestType
		}
	}
	return scores
}

// tagWeight sums how many times the group asked for each of the restaurant's tags.
func tagWeight(counter map[string]int, tags []string) float64 {
	total := 0
	for _, t := range tags {
		total += counter[t]
	}
	return float64(total)
}

// dishScore is the cosine similarity between the group's weighted dish terms
// and the restaurant's listed dishes.
func dishScore(counter map[string]int, dishes []string) float64 {
	if len(counter) == 0 || len(dishes) == 0 {
		return 0
	}
	var dot, norm float64
	for _, n := range counter {
		norm += float64(n * n)
	}
	seen := make(map[string]bool, len(dishes))
	for _, d := range dishes {
		if seen[d] {
			continue
		}
		seen[d] = true
		dot += float64(counter[d])
	}
	return dot / (math.Sqrt(norm) * math.Sqrt(float64(len(seen))))
}

func ratingScore(rating float64) float64 {
	return math.Min(math.Max(rating, 0), 5) / 5
}

// costScore is 1/(|cost-budget|+1), or 0 when the group gave no budget.
func costScore(cost, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	return 1 / (math.Abs(cost-budget) + 1)
}

// DistanceScore is 1/(km+1).
func DistanceScore(km float64) float64 {
	return 1 / (km + 1)
}
