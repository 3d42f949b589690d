package dedup

import (
	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// DefaultThreshold is the composite score at or above which two events are
// considered duplicates.
const DefaultThreshold = 0.65

// Composite score weights. Title carries the most signal; category the least
// because classification is itself a heuristic.
const (
	titleWeight    = 0.45
	locationWeight = 0.25
	temporalWeight = 0.20
	categoryWeight = 0.10

	// sameAreaKM is the radius inside which two reports plausibly describe
	// the same incident area.
	sameAreaKM = 50.0

	// temporalWindowHours is where temporal similarity decays to zero.
	temporalWindowHours = 48.0

	// categoryMismatchScore is the floor for differing categories; never zero
	// because the category classifier is unreliable.
	categoryMismatchScore = 0.3
)

// DuplicateScore holds the four pairwise sub-scores and their weighted
// composite. Ephemeral: computed per pair, never persisted.
type DuplicateScore struct {
	Score              float64
	TitleSimilarity    float64
	LocationSimilarity float64
	TemporalSimilarity float64
	CategorySimilarity float64
}

// CalculateDuplicateScore scores one event pair. Title similarity is the max
// of edit-distance similarity and word-set Jaccard similarity, which
// tolerates both near-identical phrasing and reordered partial overlap.
func CalculateDuplicateScore(e1, e2 domain.Event) DuplicateScore {
	titleSim := max(
		StringSimilarity(e1.Title, e2.Title),
		JaccardSimilarity(e1.Title, e2.Title),
	)

	distance := HaversineDistance(e1.Coordinates, e2.Coordinates)
	locationSim := 0.0
	if distance < sameAreaKM {
		locationSim = 1 - distance/sameAreaKM
	}

	temporalSim := TemporalSimilarity(e1.EventDate, e2.EventDate, temporalWindowHours)

	categorySim := categoryMismatchScore
	if e1.Category == e2.Category {
		categorySim = 1.0
	}

	return DuplicateScore{
		Score: titleSim*titleWeight +
			locationSim*locationWeight +
			temporalSim*temporalWeight +
			categorySim*categoryWeight,
		TitleSimilarity:    titleSim,
		LocationSimilarity: locationSim,
		TemporalSimilarity: temporalSim,
		CategorySimilarity: categorySim,
	}
}
