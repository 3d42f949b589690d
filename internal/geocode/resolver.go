// Package geocode turns free-form crisis text into map coordinates. It layers
// three strategies: a curated gazetteer of recurring conflict locations,
// heuristic place-name extraction from headlines, and an external geocoding
// provider behind a TTL cache and a rate limiter.
package geocode

import (
	"context"
	"log/slog"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// Confidence grades how trustworthy a resolved coordinate is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

const (
	// minImportance is the provider importance below which a hit is
	// discarded as too obscure to be the subject of a crisis report.
	minImportance = 0.3

	// highImportance is the provider importance above which a hit counts
	// as high confidence.
	highImportance = 0.6
)

// Resolution is a resolved coordinate with its confidence grade.
type Resolution struct {
	Coordinates domain.Coordinates
	Confidence  Confidence
}

// Resolver resolves coordinates for event text. The geocoder is optional;
// without one only the gazetteer and extraction layers run.
type Resolver struct {
	geocoder domain.Geocoder
	logger   *slog.Logger
}

// NewResolver creates a resolver. geocoder may be nil to disable external
// lookups.
func NewResolver(geocoder domain.Geocoder, logger *slog.Logger) *Resolver {
	return &Resolver{geocoder: geocoder, logger: logger}
}

// Resolve finds coordinates for a piece of text. Gazetteer hits short-circuit
// before any extraction or provider call. Provider errors are logged and
// treated as a miss for that candidate so one flaky lookup cannot fail the
// whole resolution.
func (r *Resolver) Resolve(ctx context.Context, text string) (Resolution, bool) {
	if coords, _, ok := ScanKnown(text); ok {
		return Resolution{Coordinates: coords, Confidence: ConfidenceHigh}, true
	}

	for _, candidate := range ExtractLocationNames(text) {
		if coords, ok := KnownLocation(candidate); ok {
			return Resolution{Coordinates: coords, Confidence: ConfidenceHigh}, true
		}

		if r.geocoder == nil {
			continue
		}
		result, err := r.geocoder.Search(ctx, candidate)
		if err != nil {
			if ctx.Err() != nil {
				return Resolution{}, false
			}
			r.logger.Warn("geocode lookup failed", "candidate", candidate, "error", err)
			continue
		}
		if result.DisplayName == "" || result.Importance <= minImportance {
			continue
		}

		confidence := ConfidenceMedium
		if result.Importance > highImportance {
			confidence = ConfidenceHigh
		}
		return Resolution{
			Coordinates: domain.Coordinates{Lon: result.Lon, Lat: result.Lat},
			Confidence:  confidence,
		}, true
	}

	return Resolution{}, false
}

// ResolveBatch resolves many texts sequentially, respecting the provider rate
// limit through the decorated geocoder. onProgress, when non-nil, is called
// after each text with the number processed so far and the total.
func (r *Resolver) ResolveBatch(ctx context.Context, texts []string, onProgress func(done, total int)) map[string]*domain.Coordinates {
	results := make(map[string]*domain.Coordinates, len(texts))

	for i, text := range texts {
		if resolution, ok := r.Resolve(ctx, text); ok {
			coords := resolution.Coordinates
			results[text] = &coords
		} else {
			results[text] = nil
		}
		if onProgress != nil {
			onProgress(i+1, len(texts))
		}
	}
	return results
}
