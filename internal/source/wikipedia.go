package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// WikipediaBaseURL is the rendered HTML of the current events portal.
const WikipediaBaseURL = "https://en.wikipedia.org/api/rest_v1/page/html/Portal%3ACurrent_events"

// wikipediaPortalURL is the canonical source link attached to every event.
const wikipediaPortalURL = "https://en.wikipedia.org/wiki/Portal:Current_events"

var wikiLocations = []knownSpot{
	{"ukraine", domain.Coordinates{Lon: 31.16, Lat: 48.38}},
	{"russia", domain.Coordinates{Lon: 37.62, Lat: 55.75}},
	{"kyiv", domain.Coordinates{Lon: 30.52, Lat: 50.45}},
	{"gaza", domain.Coordinates{Lon: 34.46, Lat: 31.50}},
	{"israel", domain.Coordinates{Lon: 35.21, Lat: 31.77}},
	{"jerusalem", domain.Coordinates{Lon: 35.21, Lat: 31.77}},
	{"syria", domain.Coordinates{Lon: 36.72, Lat: 34.80}},
	{"iran", domain.Coordinates{Lon: 51.42, Lat: 35.69}},
	{"yemen", domain.Coordinates{Lon: 44.21, Lat: 15.37}},
	{"sudan", domain.Coordinates{Lon: 32.53, Lat: 15.59}},
	{"lebanon", domain.Coordinates{Lon: 35.50, Lat: 33.89}},
	{"iraq", domain.Coordinates{Lon: 44.36, Lat: 33.31}},
	{"afghanistan", domain.Coordinates{Lon: 69.17, Lat: 34.52}},
	{"pakistan", domain.Coordinates{Lon: 73.05, Lat: 33.69}},
	{"india", domain.Coordinates{Lon: 77.21, Lat: 28.61}},
	{"china", domain.Coordinates{Lon: 116.41, Lat: 39.90}},
	{"taiwan", domain.Coordinates{Lon: 121.56, Lat: 25.03}},
	{"north korea", domain.Coordinates{Lon: 125.75, Lat: 39.03}},
	{"myanmar", domain.Coordinates{Lon: 96.17, Lat: 16.87}},
	{"ethiopia", domain.Coordinates{Lon: 38.74, Lat: 9.03}},
	{"somalia", domain.Coordinates{Lon: 45.34, Lat: 2.04}},
	{"libya", domain.Coordinates{Lon: 13.18, Lat: 32.89}},
	{"mali", domain.Coordinates{Lon: -8.00, Lat: 12.65}},
	{"nigeria", domain.Coordinates{Lon: 7.49, Lat: 9.06}},
	{"venezuela", domain.Coordinates{Lon: -66.88, Lat: 10.49}},
	{"mexico", domain.Coordinates{Lon: -99.13, Lat: 19.43}},
	{"haiti", domain.Coordinates{Lon: -72.29, Lat: 18.54}},
	{"turkey", domain.Coordinates{Lon: 32.86, Lat: 39.93}},
	{"germany", domain.Coordinates{Lon: 10.45, Lat: 51.17}},
	{"france", domain.Coordinates{Lon: 2.35, Lat: 48.86}},
	{"usa", domain.Coordinates{Lon: -77.04, Lat: 38.91}},
	{"united states", domain.Coordinates{Lon: -77.04, Lat: 38.91}},
}

// minHeadlineLen drops navigation fragments and bare wiki links.
const minHeadlineLen = 20

// Wikipedia scrapes the "Armed conflicts" section of the current events
// portal for headlines that mention a mappable location.
type Wikipedia struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewWikipedia creates the Wikipedia connector. An empty baseURL selects the
// public REST endpoint.
func NewWikipedia(baseURL string, timeout time.Duration, logger *slog.Logger) *Wikipedia {
	if baseURL == "" {
		baseURL = WikipediaBaseURL
	}
	return &Wikipedia{
		httpClient: newHTTPClient(timeout),
		baseURL:    baseURL,
		logger:     logger,
	}
}

func (w *Wikipedia) Name() string { return "wikipedia" }

func (w *Wikipedia) Fetch(ctx context.Context) ([]domain.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia API error: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse portal html: %w", err)
	}

	var events []domain.Event
	for _, item := range armedConflictItems(doc) {
		text := collapseWhitespace(item)
		if len(text) < minHeadlineLen {
			continue
		}
		coords, ok := locateInText(wikiLocations, text, 1.0)
		if !ok {
			continue
		}

		event := domain.NewEvent(text, coords, domain.MapToCategory(nil, text),
			domain.DetermineSeverity(text, ""))
		event.Description = domain.TruncateDescription(text)
		event.SourceURL = wikipediaPortalURL
		event.Verified = true
		event.Tags = []string{"wikipedia", "current-events"}
		events = append(events, event)
	}
	return events, nil
}

// armedConflictItems returns the text of the list items under the "Armed
// conflicts" heading, up to the next section heading. The portal markup
// varies, so the heading may be an h-element or bold text inside one.
func armedConflictItems(doc *goquery.Document) []string {
	var heading *goquery.Selection
	doc.Find("h2, h3, b, span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), "Armed conflicts") {
			heading = s
			return false
		}
		return true
	})
	if heading == nil {
		return nil
	}

	items := heading.NextUntil("h2, h3").Find("li")
	if items.Length() == 0 {
		items = heading.Parent().NextUntil("h2, h3").Find("li")
	}

	var texts []string
	items.Each(func(_ int, li *goquery.Selection) {
		texts = append(texts, li.Text())
	})
	return texts
}
