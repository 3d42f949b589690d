// Package source ingests raw crisis reports from public feeds and APIs and
// normalizes them into canonical events. Every connector is best-effort: a
// failing upstream yields an error for the aggregator to log, never a panic,
// and partial results are always preferred over none.
package source

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// Connector is a single upstream feed producing canonical events.
type Connector interface {
	// Name identifies the connector in logs and metrics.
	Name() string

	// Fetch retrieves and normalizes the connector's current events.
	Fetch(ctx context.Context) ([]domain.Event, error)
}

// DefaultTimeout bounds a single upstream HTTP request.
const DefaultTimeout = 10 * time.Second

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

// stripTags removes HTML markup, leaving plain text.
func stripTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}

// collapseWhitespace folds runs of whitespace into single spaces and trims.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
