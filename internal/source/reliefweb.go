package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// ReliefWebBaseURL is the ReliefWeb reports API endpoint.
const ReliefWebBaseURL = "https://api.reliefweb.int/v1/reports"

// countryCentroid pins a crisis country to a representative coordinate.
// Reports are jittered around the centroid to keep them visually distinct.
type countryCentroid struct {
	name   string
	coords domain.Coordinates
}

var reliefWebCountries = []countryCentroid{
	{"ukraine", domain.Coordinates{Lon: 31.16, Lat: 48.38}},
	{"syria", domain.Coordinates{Lon: 36.72, Lat: 34.80}},
	{"yemen", domain.Coordinates{Lon: 44.21, Lat: 15.37}},
	{"sudan", domain.Coordinates{Lon: 32.53, Lat: 15.59}},
	{"myanmar", domain.Coordinates{Lon: 96.17, Lat: 16.87}},
	{"afghanistan", domain.Coordinates{Lon: 69.17, Lat: 34.52}},
	{"iraq", domain.Coordinates{Lon: 44.36, Lat: 33.31}},
	{"somalia", domain.Coordinates{Lon: 45.34, Lat: 2.04}},
	{"libya", domain.Coordinates{Lon: 13.18, Lat: 32.89}},
	{"ethiopia", domain.Coordinates{Lon: 38.74, Lat: 9.03}},
	{"democratic republic of the congo", domain.Coordinates{Lon: 15.28, Lat: -4.32}},
	{"haiti", domain.Coordinates{Lon: -72.29, Lat: 18.54}},
	{"nigeria", domain.Coordinates{Lon: 7.49, Lat: 9.06}},
	{"mali", domain.Coordinates{Lon: -8.00, Lat: 12.65}},
	{"lebanon", domain.Coordinates{Lon: 35.50, Lat: 33.89}},
	{"palestine", domain.Coordinates{Lon: 34.46, Lat: 31.50}},
	{"israel", domain.Coordinates{Lon: 35.21, Lat: 31.77}},
	{"pakistan", domain.Coordinates{Lon: 73.05, Lat: 33.69}},
	{"bangladesh", domain.Coordinates{Lon: 90.39, Lat: 23.81}},
	{"mozambique", domain.Coordinates{Lon: 35.53, Lat: -18.67}},
	{"burkina faso", domain.Coordinates{Lon: -1.56, Lat: 12.37}},
	{"niger", domain.Coordinates{Lon: 8.08, Lat: 17.61}},
	{"cameroon", domain.Coordinates{Lon: 12.35, Lat: 5.95}},
	{"chad", domain.Coordinates{Lon: 18.73, Lat: 15.45}},
	{"central african republic", domain.Coordinates{Lon: 20.94, Lat: 6.61}},
}

// ReliefWeb is the connector for humanitarian situation reports.
type ReliefWeb struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewReliefWeb creates the ReliefWeb connector. An empty baseURL selects the
// public endpoint.
func NewReliefWeb(baseURL string, timeout time.Duration, logger *slog.Logger) *ReliefWeb {
	if baseURL == "" {
		baseURL = ReliefWebBaseURL
	}
	return &ReliefWeb{
		httpClient: newHTTPClient(timeout),
		baseURL:    baseURL,
		logger:     logger,
	}
}

func (r *ReliefWeb) Name() string { return "reliefweb" }

// Fetch pulls the latest reports, keeps the conflict-related ones from
// countries with a known centroid, and marks them verified since ReliefWeb
// content is editorially curated.
func (r *ReliefWeb) Fetch(ctx context.Context) ([]domain.Event, error) {
	u := r.baseURL + "?appname=globalobserver&preset=latest&limit=50&profile=list"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reliefweb request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reliefweb API error: status %d", resp.StatusCode)
	}

	var body reliefWebResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var events []domain.Event
	for _, report := range body.Data {
		title := report.Fields.Title
		if title == "" {
			title = "ReliefWeb Report"
		}

		var countryName string
		if len(report.Fields.Country) > 0 {
			countryName = strings.ToLower(report.Fields.Country[0].Name)
		}
		coords, ok := reliefWebCentroid(countryName)
		if !ok {
			continue
		}
		if !isConflictRelated(title) {
			continue
		}

		themes := make([]string, 0, len(report.Fields.Theme))
		for _, theme := range report.Fields.Theme {
			themes = append(themes, theme.Name)
		}

		event := domain.NewEvent(title, jitterCoordinates(coords, title, 1.0),
			domain.MapToCategory(themes, title), domain.DetermineSeverity(title, ""))
		if created := report.Fields.Date.Created; !created.IsZero() {
			event.EventDate = created.UTC()
		}
		event.SourceURL = fmt.Sprintf("https://reliefweb.int/node/%s", report.ID.String())
		event.Verified = true
		if len(themes) > 5 {
			themes = themes[:5]
		}
		event.Tags = themes
		events = append(events, event)
	}
	return events, nil
}

func reliefWebCentroid(countryName string) (domain.Coordinates, bool) {
	for _, c := range reliefWebCountries {
		if strings.Contains(countryName, c.name) {
			return c.coords, true
		}
	}
	return domain.Coordinates{}, false
}

// ReliefWeb API response types.

type reliefWebResponse struct {
	Data []struct {
		ID     json.Number `json:"id"`
		Fields struct {
			Title   string `json:"title"`
			Country []struct {
				Name string `json:"name"`
			} `json:"country"`
			Theme []struct {
				Name string `json:"name"`
			} `json:"theme"`
			Date struct {
				Created time.Time `json:"created"`
			} `json:"date"`
		} `json:"fields"`
	} `json:"data"`
}
