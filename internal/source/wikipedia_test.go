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

const portalFixture = `<html><body>
<section>
<h2>Armed conflicts</h2>
<ul>
  <li>Russian forces launch a missile attack on Kharkiv, Ukraine, with three killed.</li>
  <li>Short note</li>
  <li>Negotiators meet for another round of talks over disputed boundaries.</li>
</ul>
<h2>Politics and elections</h2>
<ul>
  <li>Parliament of Ukraine passes a budget amendment after a lengthy debate.</li>
</ul>
</section>
</body></html>`

func TestWikipediaFetch(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, portalFixture)
	})

	connector := NewWikipedia(server.URL, 5*time.Second, discardLogger())
	assert.Equal(t, "wikipedia", connector.Name())

	events, err := connector.Fetch(context.Background())
	require.NoError(t, err)

	// Only the first item survives: the second is below the length floor,
	// the third mentions no mappable location, and the politics section is
	// outside the scraped range.
	require.Len(t, events, 1)
	event := events[0]
	assert.Equal(t, "Russian forces launch a missile attack on Kharkiv, Ukraine, with three killed.", event.Title)
	assert.Equal(t, domain.CategoryWeapons, event.Category)
	assert.Equal(t, domain.SeverityHigh, event.Severity)
	assert.InDelta(t, 31.16, event.Coordinates.Lon, 0.5)
	assert.InDelta(t, 48.38, event.Coordinates.Lat, 0.5)
	assert.Equal(t, wikipediaPortalURL, event.SourceURL)
	assert.True(t, event.Verified)
	assert.Equal(t, []string{"wikipedia", "current-events"}, event.Tags)
	require.NoError(t, event.Validate())
}

func TestWikipediaFetchHandlesWrappedHeading(t *testing.T) {
	// Some portal renderings wrap the section title in a span inside the
	// heading element.
	fixture := `<html><body>
<h2><span>Armed conflicts</span></h2>
<ul><li>Heavy artillery shelling reported across the Sudan border region.</li></ul>
<h2>Sport</h2>
</body></html>`

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, fixture)
	})

	connector := NewWikipedia(server.URL, 5*time.Second, discardLogger())
	events, err := connector.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.CategoryShelling, events[0].Category)
}

func TestWikipediaFetchUpstreamError(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	connector := NewWikipedia(server.URL, 5*time.Second, discardLogger())
	_, err := connector.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}
