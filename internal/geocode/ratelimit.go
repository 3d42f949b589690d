package geocode

import (
	"context"
	"sync"
	"time"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// DefaultRequestInterval is the minimum spacing between provider requests.
// Nominatim's usage policy allows at most one request per second; the extra
// margin keeps bursts safely under that.
const DefaultRequestInterval = 1100 * time.Millisecond

// RateLimitedGeocoder serializes provider requests so that consecutive calls,
// including calls from concurrent goroutines, are at least one interval apart.
type RateLimitedGeocoder struct {
	inner    domain.Geocoder
	interval time.Duration

	mu          sync.Mutex
	nextAllowed time.Time
}

// NewRateLimitedGeocoder creates a rate-limiting decorator around a geocoder.
func NewRateLimitedGeocoder(inner domain.Geocoder, interval time.Duration) *RateLimitedGeocoder {
	return &RateLimitedGeocoder{inner: inner, interval: interval}
}

func (r *RateLimitedGeocoder) Search(ctx context.Context, query string) (domain.GeocodingResult, error) {
	if err := r.wait(ctx); err != nil {
		return domain.GeocodingResult{}, err
	}
	return r.inner.Search(ctx, query)
}

// wait reserves the next request slot and sleeps until it opens. Each caller
// gets a distinct slot, so concurrent callers queue up an interval apart.
func (r *RateLimitedGeocoder) wait(ctx context.Context) error {
	r.mu.Lock()
	now := clock.Now()
	delay := r.nextAllowed.Sub(now)
	if delay < 0 {
		delay = 0
	}
	r.nextAllowed = now.Add(delay + r.interval)
	r.mu.Unlock()

	if delay == 0 {
		return nil
	}

	select {
	case <-clock.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
