package nominatim

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(server.URL, 5*time.Second, logger)
}

func TestSearch(t *testing.T) {
	t.Run("parses a hit", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "Kramatorsk", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
			assert.NotEmpty(t, r.Header.Get("User-Agent"))

			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `[{
				"lat": "48.7194",
				"lon": "37.5562",
				"display_name": "Kramatorsk, Donetsk Oblast, Ukraine",
				"importance": 0.62,
				"type": "city",
				"address": {"country": "Ukraine", "city": "Kramatorsk"}
			}]`)
		})

		result, err := client.Search(context.Background(), "Kramatorsk")
		require.NoError(t, err)
		assert.InDelta(t, 48.7194, result.Lat, 1e-9)
		assert.InDelta(t, 37.5562, result.Lon, 1e-9)
		assert.Equal(t, "Kramatorsk, Donetsk Oblast, Ukraine", result.DisplayName)
		assert.InDelta(t, 0.62, result.Importance, 1e-9)
		assert.Equal(t, "city", result.Type)
		assert.Equal(t, "Ukraine", result.Country)
		assert.Equal(t, "Kramatorsk", result.City)
	})

	t.Run("falls back to town then village", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[{
				"lat": "1.0",
				"lon": "2.0",
				"display_name": "Somewhere",
				"importance": 0.5,
				"type": "town",
				"address": {"country": "Nowhere", "town": "Someville"}
			}]`)
		})

		result, err := client.Search(context.Background(), "Someville")
		require.NoError(t, err)
		assert.Equal(t, "Someville", result.City)
	})

	t.Run("empty response means not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[]`)
		})

		result, err := client.Search(context.Background(), "nowhere")
		require.NoError(t, err)
		assert.Empty(t, result.DisplayName)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		})

		_, err := client.Search(context.Background(), "Kyiv")
		assert.ErrorContains(t, err, "status 429")
	})

	t.Run("malformed coordinates are an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[{"lat": "not-a-number", "lon": "2.0", "display_name": "x"}]`)
		})

		_, err := client.Search(context.Background(), "x")
		assert.ErrorContains(t, err, "parse lat")
	})
}
