package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// USGSBaseURL is the USGS earthquake catalog query endpoint.
const USGSBaseURL = "https://earthquake.usgs.gov/fdsnws/event/1/query"

// USGS is the connector for significant earthquakes, magnitude 4.0 and up
// over the last seven days.
type USGS struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewUSGS creates the USGS connector. An empty baseURL selects the public
// endpoint.
func NewUSGS(baseURL string, timeout time.Duration, logger *slog.Logger) *USGS {
	if baseURL == "" {
		baseURL = USGSBaseURL
	}
	return &USGS{
		httpClient: newHTTPClient(timeout),
		baseURL:    baseURL,
		logger:     logger,
	}
}

func (u *USGS) Name() string { return "usgs" }

func (u *USGS) Fetch(ctx context.Context) ([]domain.Event, error) {
	now := clock.Now().UTC()
	params := url.Values{
		"format":       {"geojson"},
		"starttime":    {now.AddDate(0, 0, -7).Format("2006-01-02")},
		"endtime":      {now.Format("2006-01-02")},
		"minmagnitude": {"4.0"},
		"limit":        {"100"},
		"orderby":      {"time"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("usgs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usgs API error: status %d", resp.StatusCode)
	}

	var body usgsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var events []domain.Event
	for _, feature := range body.Features {
		coords := feature.Geometry.Coordinates
		if len(coords) < 2 {
			continue
		}

		magnitude := feature.Properties.Mag
		place := feature.Properties.Place
		if place == "" {
			place = "Unknown"
		}
		var depth float64
		if len(coords) > 2 {
			depth = coords[2]
		}

		event := domain.NewEvent(
			fmt.Sprintf("Earthquake M%.1f - %s", magnitude, place),
			domain.Coordinates{Lon: coords[0], Lat: coords[1]},
			domain.CategoryShelling, // earthquakes render on the same layer as impacts
			quakeSeverity(magnitude),
		)
		event.Description = domain.TruncateDescription(
			fmt.Sprintf("Magnitude %.1f earthquake at depth %.0fkm", magnitude, depth))
		if feature.Properties.Time > 0 {
			event.EventDate = time.UnixMilli(feature.Properties.Time).UTC()
		}
		event.SourceURL = feature.Properties.URL
		event.Verified = true
		event.Tags = []string{"usgs", "earthquake", fmt.Sprintf("M%.0f", magnitude)}
		events = append(events, event)
	}
	return events, nil
}

func quakeSeverity(magnitude float64) domain.Severity {
	switch {
	case magnitude >= 7.0:
		return domain.SeverityCritical
	case magnitude >= 6.0:
		return domain.SeverityHigh
	case magnitude >= 5.0:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// USGS API response types.

type usgsResponse struct {
	Features []struct {
		Properties struct {
			Mag   float64 `json:"mag"`
			Place string  `json:"place"`
			Time  int64   `json:"time"`
			URL   string  `json:"url"`
		} `json:"properties"`
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}
