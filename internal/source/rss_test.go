package source

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

const sampleFeed = `<?xml version="1.0"?>
<rss version="2.0">
<channel>
	<title>Test Wire</title>
	<item>
		<title><![CDATA[Missile strike hits Kharkiv power plant]]></title>
		<link>https://example.com/articles/1</link>
		<description><![CDATA[Officials report casualties after the overnight attack.]]></description>
		<pubDate>Sun, 01 Feb 2026 07:15:00 +0000</pubDate>
	</item>
	<item>
		<title>Quarterly results beat expectations</title>
		<link>https://example.com/articles/2</link>
		<description>Markets rally on earnings news.</description>
	</item>
	<item>
		<title>Ceasefire talks resume</title>
		<link>https://example.com/articles/3</link>
		<description>Negotiators meet for a second round.</description>
	</item>
</channel>
</rss>`

func TestRSSFetch(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, sampleFeed)
	})

	connector := NewRSSWithFeeds([]rssFeed{{name: "testwire", url: server.URL}}, 5*time.Second, discardLogger())
	assert.Equal(t, "rss", connector.Name())

	events, err := connector.Fetch(context.Background())
	require.NoError(t, err)

	// Item 2 has no conflict keyword; item 3 has one but no mappable location.
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, "Missile strike hits Kharkiv power plant", event.Title)
	assert.Equal(t, "https://example.com/articles/1", event.SourceURL)
	assert.True(t, event.Verified)
	assert.Equal(t, []string{"testwire"}, event.Tags)
	assert.Equal(t, time.Date(2026, 2, 1, 7, 15, 0, 0, time.UTC), event.EventDate)
	require.NotNil(t, event.Description)
	assert.Equal(t, "Officials report casualties after the overnight attack.", *event.Description)

	// Jittered around the Kharkiv reference point, at most one degree off.
	assert.InDelta(t, 36.23, event.Coordinates.Lon, 1.0)
	assert.InDelta(t, 49.99, event.Coordinates.Lat, 1.0)
	require.NoError(t, event.Validate())
}

func TestRSSFetchSkipsBrokenFeeds(t *testing.T) {
	broken := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	})
	working := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, sampleFeed)
	})

	connector := NewRSSWithFeeds([]rssFeed{
		{name: "broken", url: broken.URL},
		{name: "working", url: working.URL},
	}, 5*time.Second, discardLogger())

	events, err := connector.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, []string{"working"}, events[0].Tags)
}

func TestParsePubDate(t *testing.T) {
	parsed, ok := parsePubDate("Sun, 01 Feb 2026 07:15:00 +0000")
	require.True(t, ok)
	assert.Equal(t, 2026, parsed.Year())

	_, ok = parsePubDate("not a date")
	assert.False(t, ok)

	_, ok = parsePubDate("")
	assert.False(t, ok)
}

func TestLocateInText(t *testing.T) {
	coords, ok := locateInText(rssLocations, "Explosions reported across Kharkiv", 2.0)
	require.True(t, ok)
	assert.InDelta(t, 36.23, coords.Lon, 1.0)

	_, ok = locateInText(rssLocations, "no places mentioned", 2.0)
	assert.False(t, ok)
}

func TestRSSLocationsValid(t *testing.T) {
	seen := make(map[string]bool)
	for _, spot := range rssLocations {
		assert.False(t, seen[spot.name], "duplicate location %q", spot.name)
		seen[spot.name] = true
		assert.NotEqual(t, domain.Coordinates{}, spot.coords)
	}
}
