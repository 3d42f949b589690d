package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// GDELTBaseURL is the GDELT GEO 2.0 API endpoint.
const GDELTBaseURL = "https://api.gdeltproject.org/api/v2/geo/geo"

// gdeltQueries sweep the priority regions first, then the broad conflict
// vocabulary. Each query is issued separately so one empty region does not
// starve the rest.
var gdeltQueries = []string{
	// Priority regions
	"ukraine OR russia OR kyiv OR moscow OR donbas",
	"gaza OR israel OR hamas OR tel aviv OR jerusalem",
	"syria OR iran OR tehran OR damascus",
	"turkey OR erdogan OR ankara OR kurdish",
	"europe OR nato OR germany OR france OR uk",
	"usa OR washington OR pentagon OR american",
	// Secondary regions
	"india OR pakistan OR kashmir OR delhi",
	"thailand OR cambodia OR vietnam OR myanmar OR philippines",
	"brazil OR argentina OR venezuela OR colombia",
	"mexico OR guatemala OR honduras OR haiti",
	// Global conflict keywords
	"conflict OR war OR attack OR military",
	"terrorism OR terror OR bomb OR explosion",
	"protest OR demonstration OR unrest OR riot",
	"weapons OR missile OR drone OR airstrike",
	"hostage OR kidnap OR assassination",
	"sanctions OR nuclear OR troops",
}

var gdeltTitleRe = regexp.MustCompile(`<b>([^<]+)</b>`)

// GDELT is the connector for the GDELT GEO point-data API.
type GDELT struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewGDELT creates the GDELT connector. An empty baseURL selects the public
// endpoint.
func NewGDELT(baseURL string, timeout time.Duration, logger *slog.Logger) *GDELT {
	if baseURL == "" {
		baseURL = GDELTBaseURL
	}
	return &GDELT{
		httpClient: newHTTPClient(timeout),
		baseURL:    baseURL,
		logger:     logger,
	}
}

func (g *GDELT) Name() string { return "gdelt" }

// Fetch runs every regional query against the GEO API. Failing queries are
// logged and skipped so a single upstream hiccup only costs one region.
func (g *GDELT) Fetch(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event

	for _, query := range gdeltQueries {
		queryEvents, err := g.fetchQuery(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				return events, ctx.Err()
			}
			g.logger.Warn("gdelt query failed", "query", query, "error", err)
			continue
		}
		events = append(events, queryEvents...)
	}
	return events, nil
}

func (g *GDELT) fetchQuery(ctx context.Context, query string) ([]domain.Event, error) {
	params := url.Values{
		"query":     {query},
		"mode":      {"pointdata"},
		"format":    {"geojson"},
		"timespan":  {"24h"},
		"maxpoints": {"30"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gdelt request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gdelt API error: status %d", resp.StatusCode)
	}

	var geo gdeltGeoResponse
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	tag := strings.Fields(query)[0]
	var events []domain.Event
	for _, feature := range geo.Features {
		if len(feature.Geometry.Coordinates) < 2 {
			continue
		}

		title := feature.Properties.Name
		if title == "" {
			title = "Event"
		}
		if m := gdeltTitleRe.FindStringSubmatch(feature.Properties.HTML); m != nil {
			title = m[1]
		}

		coords := domain.Coordinates{
			Lon: feature.Geometry.Coordinates[0],
			Lat: feature.Geometry.Coordinates[1],
		}
		event := domain.NewEvent(title, coords, domain.MapToCategory(nil, title), domain.DetermineSeverity(title, ""))
		event.Description = domain.TruncateDescription(collapseWhitespace(stripTags(feature.Properties.HTML)))
		event.Tags = []string{tag}
		if feature.Properties.ShareImage != "" {
			event.MediaURLs = []string{feature.Properties.ShareImage}
		}
		events = append(events, event)
	}
	return events, nil
}

// GDELT GEO API response types.

type gdeltGeoResponse struct {
	Features []gdeltFeature `json:"features"`
}

type gdeltFeature struct {
	Properties struct {
		Name       string `json:"name"`
		HTML       string `json:"html"`
		ShareImage string `json:"shareimage"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
}
