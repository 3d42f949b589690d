package source

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestIsConflictRelated(t *testing.T) {
	assert.True(t, isConflictRelated("Heavy shelling reported near the frontline"))
	assert.True(t, isConflictRelated("HAMAS announces ceasefire terms"))
	assert.True(t, isConflictRelated("Krieg in der Region eskaliert"))
	assert.False(t, isConflictRelated("Local bakery wins regional pastry award"))
	assert.False(t, isConflictRelated(""))
}

func TestJitterCoordinates(t *testing.T) {
	base := domain.Coordinates{Lon: 30.0, Lat: 50.0}

	first := jitterCoordinates(base, "some headline", 2.0)
	second := jitterCoordinates(base, "some headline", 2.0)
	assert.Equal(t, first, second, "same seed must give the same offset")

	other := jitterCoordinates(base, "another headline", 2.0)
	assert.NotEqual(t, first, other)

	assert.InDelta(t, base.Lon, first.Lon, 1.0)
	assert.InDelta(t, base.Lat, first.Lat, 1.0)
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "bold and plain", stripTags("<b>bold</b> and <i>plain</i>"))
	assert.Equal(t, "untouched", stripTags("untouched"))
}
