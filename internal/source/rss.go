package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// rssLocations maps place names seen in headlines to coordinates. Scan order
// matters: specific cities come before their country so "Kharkiv, Ukraine"
// pins to the city.
var rssLocations = []knownSpot{
	// Russia/Ukraine
	{"ukraine", domain.Coordinates{Lon: 31.16, Lat: 48.38}},
	{"kyiv", domain.Coordinates{Lon: 30.52, Lat: 50.45}},
	{"kharkiv", domain.Coordinates{Lon: 36.23, Lat: 49.99}},
	{"odesa", domain.Coordinates{Lon: 30.73, Lat: 46.48}},
	{"odessa", domain.Coordinates{Lon: 30.73, Lat: 46.48}},
	{"donbas", domain.Coordinates{Lon: 38.50, Lat: 48.00}},
	{"donetsk", domain.Coordinates{Lon: 37.80, Lat: 48.02}},
	{"luhansk", domain.Coordinates{Lon: 39.30, Lat: 48.57}},
	{"crimea", domain.Coordinates{Lon: 34.10, Lat: 44.95}},
	{"mariupol", domain.Coordinates{Lon: 37.55, Lat: 47.10}},
	{"zaporizhzhia", domain.Coordinates{Lon: 35.14, Lat: 47.84}},
	{"russia", domain.Coordinates{Lon: 37.62, Lat: 55.75}},
	{"moscow", domain.Coordinates{Lon: 37.62, Lat: 55.75}},
	{"kursk", domain.Coordinates{Lon: 36.18, Lat: 51.73}},
	{"belgorod", domain.Coordinates{Lon: 36.60, Lat: 50.60}},

	// Gaza/Israel
	{"gaza", domain.Coordinates{Lon: 34.46, Lat: 31.50}},
	{"israel", domain.Coordinates{Lon: 35.21, Lat: 31.77}},
	{"jerusalem", domain.Coordinates{Lon: 35.21, Lat: 31.77}},
	{"tel aviv", domain.Coordinates{Lon: 34.78, Lat: 32.08}},
	{"west bank", domain.Coordinates{Lon: 35.25, Lat: 31.95}},
	{"rafah", domain.Coordinates{Lon: 34.25, Lat: 31.30}},

	// Syria
	{"syria", domain.Coordinates{Lon: 36.72, Lat: 34.80}},
	{"damascus", domain.Coordinates{Lon: 36.28, Lat: 33.51}},
	{"aleppo", domain.Coordinates{Lon: 37.16, Lat: 36.21}},
	{"idlib", domain.Coordinates{Lon: 36.63, Lat: 35.93}},
	{"homs", domain.Coordinates{Lon: 36.72, Lat: 34.73}},

	// Iran
	{"iran", domain.Coordinates{Lon: 51.42, Lat: 35.69}},
	{"tehran", domain.Coordinates{Lon: 51.42, Lat: 35.69}},
	{"isfahan", domain.Coordinates{Lon: 51.67, Lat: 32.65}},

	// Turkey/Kurdistan
	{"turkey", domain.Coordinates{Lon: 32.86, Lat: 39.93}},
	{"türkiye", domain.Coordinates{Lon: 32.86, Lat: 39.93}},
	{"ankara", domain.Coordinates{Lon: 32.86, Lat: 39.93}},
	{"istanbul", domain.Coordinates{Lon: 28.98, Lat: 41.01}},
	{"kurdish", domain.Coordinates{Lon: 43.00, Lat: 37.00}},
	{"diyarbakir", domain.Coordinates{Lon: 40.21, Lat: 37.92}},

	// Europe
	{"germany", domain.Coordinates{Lon: 10.45, Lat: 51.17}},
	{"berlin", domain.Coordinates{Lon: 13.40, Lat: 52.52}},
	{"france", domain.Coordinates{Lon: 2.35, Lat: 48.86}},
	{"paris", domain.Coordinates{Lon: 2.35, Lat: 48.86}},
	{"uk", domain.Coordinates{Lon: -0.12, Lat: 51.51}},
	{"london", domain.Coordinates{Lon: -0.12, Lat: 51.51}},

	// USA
	{"usa", domain.Coordinates{Lon: -77.04, Lat: 38.91}},
	{"united states", domain.Coordinates{Lon: -77.04, Lat: 38.91}},
	{"washington", domain.Coordinates{Lon: -77.04, Lat: 38.91}},

	// Other hotspots
	{"yemen", domain.Coordinates{Lon: 44.21, Lat: 15.37}},
	{"sudan", domain.Coordinates{Lon: 32.53, Lat: 15.59}},
	{"lebanon", domain.Coordinates{Lon: 35.50, Lat: 33.89}},
	{"iraq", domain.Coordinates{Lon: 44.36, Lat: 33.31}},
	{"afghanistan", domain.Coordinates{Lon: 69.17, Lat: 34.52}},
	{"pakistan", domain.Coordinates{Lon: 73.05, Lat: 33.69}},
	{"india", domain.Coordinates{Lon: 77.21, Lat: 28.61}},
	{"china", domain.Coordinates{Lon: 116.41, Lat: 39.90}},
	{"taiwan", domain.Coordinates{Lon: 121.56, Lat: 25.03}},
	{"myanmar", domain.Coordinates{Lon: 96.17, Lat: 16.87}},
	{"ethiopia", domain.Coordinates{Lon: 38.74, Lat: 9.03}},
	{"somalia", domain.Coordinates{Lon: 45.34, Lat: 2.04}},
	{"libya", domain.Coordinates{Lon: 13.18, Lat: 32.89}},
	{"nigeria", domain.Coordinates{Lon: 7.49, Lat: 9.06}},
	{"mali", domain.Coordinates{Lon: -8.00, Lat: 12.65}},
	{"venezuela", domain.Coordinates{Lon: -66.88, Lat: 10.49}},
	{"mexico", domain.Coordinates{Lon: -99.13, Lat: 19.43}},
	{"haiti", domain.Coordinates{Lon: -72.29, Lat: 18.54}},
	{"north korea", domain.Coordinates{Lon: 125.75, Lat: 39.03}},
	{"south korea", domain.Coordinates{Lon: 126.98, Lat: 37.57}},
	{"japan", domain.Coordinates{Lon: 139.69, Lat: 35.69}},
}

// knownSpot pairs a lowercase place name with its coordinates.
type knownSpot struct {
	name   string
	coords domain.Coordinates
}

func locateInText(spots []knownSpot, text string, spread float64) (domain.Coordinates, bool) {
	lower := strings.ToLower(text)
	for _, spot := range spots {
		if strings.Contains(lower, spot.name) {
			return jitterCoordinates(spot.coords, text, spread), true
		}
	}
	return domain.Coordinates{}, false
}

// RSS item field patterns. Feeds in the wild are messy enough that a lenient
// regex pass outperforms a strict XML parse here.
var (
	rssItemRe  = regexp.MustCompile(`(?s)<item[^>]*>(.*?)</item>`)
	rssTitleRe = regexp.MustCompile(`(?i)<title[^>]*>(?:<!\[CDATA\[)?([^<\]]+)`)
	rssLinkRe  = regexp.MustCompile(`(?i)<link[^>]*>([^<]+)`)
	rssDescRe  = regexp.MustCompile(`(?i)<description[^>]*>(?:<!\[CDATA\[)?([^<\]]*)`)
	rssDateRe  = regexp.MustCompile(`(?i)<pubDate[^>]*>([^<]+)`)
)

var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
}

// RSS is the connector aggregating the configured news feeds.
type RSS struct {
	httpClient *http.Client
	feeds      []rssFeed
	logger     *slog.Logger
}

// NewRSS creates the RSS connector over the default feed list.
func NewRSS(timeout time.Duration, logger *slog.Logger) *RSS {
	return &RSS{
		httpClient: newHTTPClient(timeout),
		feeds:      rssFeeds,
		logger:     logger,
	}
}

// NewRSSWithFeeds creates the RSS connector over a custom feed list.
func NewRSSWithFeeds(feeds []rssFeed, timeout time.Duration, logger *slog.Logger) *RSS {
	return &RSS{
		httpClient: newHTTPClient(timeout),
		feeds:      feeds,
		logger:     logger,
	}
}

func (r *RSS) Name() string { return "rss" }

// Fetch walks every feed, keeps conflict-related items that mention a
// mappable location, and tags each event with its feed name. Feed failures
// are logged and skipped.
func (r *RSS) Fetch(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event

	for _, feed := range r.feeds {
		feedEvents, err := r.fetchFeed(ctx, feed)
		if err != nil {
			if ctx.Err() != nil {
				return events, ctx.Err()
			}
			r.logger.Warn("rss feed failed", "feed", feed.name, "error", err)
			continue
		}
		events = append(events, feedEvents...)
	}
	return events, nil
}

func (r *RSS) fetchFeed(ctx context.Context, feed rssFeed) ([]domain.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feed.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed error: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}

	var events []domain.Event
	for _, itemMatch := range rssItemRe.FindAllStringSubmatch(string(body), -1) {
		item := itemMatch[1]

		title := extractField(rssTitleRe, item)
		if title == "" {
			continue
		}
		link := extractField(rssLinkRe, item)
		description := strings.TrimSpace(stripTags(extractField(rssDescRe, item)))

		fullText := title + " " + description
		if !isConflictRelated(fullText) {
			continue
		}
		coords, ok := locateInText(rssLocations, fullText, 2.0)
		if !ok {
			continue
		}

		event := domain.NewEvent(title, coords, domain.MapToCategory(nil, title),
			domain.DetermineSeverity(title, description))
		event.Description = domain.TruncateDescription(description)
		event.SourceURL = link
		event.Verified = true
		event.Tags = []string{feed.name}
		if published, ok := parsePubDate(extractField(rssDateRe, item)); ok {
			event.EventDate = published.UTC()
		}
		events = append(events, event)
	}
	return events, nil
}

func extractField(re *regexp.Regexp, item string) string {
	if m := re.FindStringSubmatch(item); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func parsePubDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
