package domain

import "context"

// GeocodingResult contains location data returned by a geocoding provider.
// A zero result with an empty DisplayName means the provider found nothing.
type GeocodingResult struct {
	Lat         float64
	Lon         float64
	DisplayName string
	Importance  float64 // 0.0–1.0 provider relevance score
	Type        string
	Country     string
	City        string
}

// Geocoder resolves free-form place names to coordinates.
type Geocoder interface {
	// Search returns the best-matching location for a place name.
	Search(ctx context.Context, query string) (GeocodingResult, error)
}
