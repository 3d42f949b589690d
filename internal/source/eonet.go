package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// EONETBaseURL is the NASA EONET v3 events endpoint.
const EONETBaseURL = "https://eonet.gsfc.nasa.gov/api/v3/events"

// EONET is the connector for NASA's natural disaster tracker. Disasters are
// folded into the conflict taxonomy by visual analogy so they render on the
// same map.
type EONET struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewEONET creates the EONET connector. An empty baseURL selects the public
// endpoint.
func NewEONET(baseURL string, timeout time.Duration, logger *slog.Logger) *EONET {
	if baseURL == "" {
		baseURL = EONETBaseURL
	}
	return &EONET{
		httpClient: newHTTPClient(timeout),
		baseURL:    baseURL,
		logger:     logger,
	}
}

func (e *EONET) Name() string { return "nasa-eonet" }

func (e *EONET) Fetch(ctx context.Context) ([]domain.Event, error) {
	params := url.Values{
		"status": {"open"},
		"limit":  {"50"},
		"days":   {"30"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eonet request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("eonet API error: status %d", resp.StatusCode)
	}

	var body eonetResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var events []domain.Event
	for _, natural := range body.Events {
		if len(natural.Geometry) == 0 || len(natural.Geometry[0].Coordinates) < 2 {
			continue
		}
		geometry := natural.Geometry[0]

		var categoryID string
		if len(natural.Categories) > 0 {
			categoryID = natural.Categories[0].ID
		}

		title := natural.Title
		if title == "" {
			title = "Natural Disaster Event"
		}

		coords := domain.Coordinates{Lon: geometry.Coordinates[0], Lat: geometry.Coordinates[1]}
		event := domain.NewEvent(title, coords, eonetCategory(categoryID), eonetSeverity(categoryID))
		if categoryID == "" {
			event.Description = domain.TruncateDescription("Event - NASA EONET")
		} else {
			event.Description = domain.TruncateDescription(categoryID + " - NASA EONET")
		}
		if !geometry.Date.IsZero() {
			event.EventDate = geometry.Date.UTC()
		}
		event.SourceURL = natural.Link
		event.Verified = true
		tag := categoryID
		if tag == "" {
			tag = "natural-disaster"
		}
		event.Tags = []string{"nasa-eonet", tag}
		events = append(events, event)
	}
	return events, nil
}

// eonetCategory maps an EONET category id onto the event taxonomy by visual
// analogy: eruptions and fires render as explosions, earthquakes as shelling,
// storms as air raids, floods as humanitarian crises.
func eonetCategory(categoryID string) domain.Category {
	categoryID = strings.ToLower(categoryID)
	switch {
	case strings.Contains(categoryID, "wildfire"), strings.Contains(categoryID, "fire"):
		return domain.CategoryExplosion
	case strings.Contains(categoryID, "volcano"):
		return domain.CategoryExplosion
	case strings.Contains(categoryID, "earthquake"):
		return domain.CategoryShelling
	case strings.Contains(categoryID, "storm"), strings.Contains(categoryID, "cyclone"):
		return domain.CategoryAirRaid
	case strings.Contains(categoryID, "flood"):
		return domain.CategoryHumanitarian
	default:
		return domain.CategoryInfrastructure
	}
}

func eonetSeverity(categoryID string) domain.Severity {
	categoryID = strings.ToLower(categoryID)
	switch {
	case strings.Contains(categoryID, "volcano"), strings.Contains(categoryID, "earthquake"):
		return domain.SeverityHigh
	case strings.Contains(categoryID, "wildfire"):
		return domain.SeverityHigh
	default:
		return domain.SeverityMedium
	}
}

// EONET API response types.

type eonetResponse struct {
	Events []struct {
		Title      string `json:"title"`
		Link       string `json:"link"`
		Categories []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"categories"`
		Geometry []struct {
			Date        time.Time `json:"date"`
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"events"`
}
