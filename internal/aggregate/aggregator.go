// Package aggregate orchestrates one fetch cycle: fan out to every source
// connector, concatenate whatever succeeded, deduplicate, and guarantee a
// non-empty batch by padding from the demo dataset.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/globalobserver/crisis-events-service/internal/dedup"
	"github.com/globalobserver/crisis-events-service/internal/domain"
	"github.com/globalobserver/crisis-events-service/internal/observability"
	"github.com/globalobserver/crisis-events-service/internal/source"
)

// State describes where the orchestrator is in its cycle. It moves from idle
// to fetching, then settles on the outcome of the most recent batch.
type State string

const (
	StateIdle     State = "idle"
	StateFetching State = "fetching"
	StateSuccess  State = "success"
	StateDegraded State = "degraded" // some sources failed, batch proceeded
	StateFallback State = "fallback" // no live events, demo data served
)

const (
	// DefaultTimeout bounds the whole fan-out. When it fires the live batch
	// is abandoned and the fallback dataset is served.
	DefaultTimeout = 20 * time.Second

	// DefaultMinEvents is the floor below which the batch is padded with
	// demo events.
	DefaultMinEvents = 20
)

// Result is the outcome of one orchestration cycle.
type Result struct {
	Events       []domain.Event `json:"events"`
	Stats        dedup.Stats    `json:"stats"`
	SourceCounts map[string]int `json:"sourceCounts"`
	State        State          `json:"state"`
	FetchedAt    time.Time      `json:"fetchedAt"`
}

// Aggregator owns the connector set and the dedup tuning. One Aggregator is
// shared between the HTTP API and the refresh scheduler; FetchAll is safe for
// concurrent use.
type Aggregator struct {
	connectors []source.Connector
	logger     *slog.Logger
	metrics    *observability.Metrics
	timeout    time.Duration
	threshold  float64
	minEvents  int

	mu    sync.Mutex
	state State
	ready atomic.Bool
}

// New creates an Aggregator. Zero timeout, threshold, or minEvents select the
// defaults.
func New(connectors []source.Connector, logger *slog.Logger, metrics *observability.Metrics, timeout time.Duration, threshold float64, minEvents int) *Aggregator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if threshold <= 0 {
		threshold = dedup.DefaultThreshold
	}
	if minEvents <= 0 {
		minEvents = DefaultMinEvents
	}
	return &Aggregator{
		connectors: connectors,
		logger:     logger,
		metrics:    metrics,
		timeout:    timeout,
		threshold:  threshold,
		minEvents:  minEvents,
		state:      StateIdle,
	}
}

// State returns the phase or outcome of the most recent cycle.
func (a *Aggregator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Aggregator) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}

// CheckReadiness returns nil once at least one batch has been produced.
func (a *Aggregator) CheckReadiness(_ context.Context) error {
	if !a.ready.Load() {
		return fmt.Errorf("no batch produced yet")
	}
	return nil
}

// FetchAll runs one cycle and always returns a non-empty batch: live events
// when the sources deliver, demo events when they do not. Individual source
// failures degrade the batch; only a global timeout abandons it entirely.
// There is no retry inside a cycle; the caller re-invokes periodically.
func (a *Aggregator) FetchAll(ctx context.Context) Result {
	a.setState(StateFetching)
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	perSource := make([][]domain.Event, len(a.connectors))
	errs := make([]error, len(a.connectors))

	var wg sync.WaitGroup
	for i, c := range a.connectors {
		wg.Add(1)
		go func(i int, c source.Connector) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					a.logger.Error("source panicked", "source", c.Name(), "panic", r)
					errs[i] = fmt.Errorf("panic: %v", r)
				}
			}()
			events, err := c.Fetch(ctx)
			if err != nil {
				errs[i] = err
				return
			}
			perSource[i] = events
		}(i, c)
	}

	settled := make(chan struct{})
	go func() {
		wg.Wait()
		close(settled)
	}()

	select {
	case <-settled:
	case <-ctx.Done():
		// Abandon the batch. In-flight connectors see the cancelled
		// context and unwind on their own; their results are discarded.
		a.logger.Error("fetch cycle timed out", "timeout", a.timeout)
		return a.fallbackResult(start)
	}

	live := make([]domain.Event, 0, 128)
	counts := make(map[string]int, len(a.connectors))
	failures := 0
	for i, c := range a.connectors {
		if errs[i] != nil {
			a.logger.Warn("source fetch failed", "source", c.Name(), "error", errs[i])
			a.metrics.SourceFailures.WithLabelValues(c.Name()).Inc()
			failures++
			continue
		}
		a.logger.Info("source fetched", "source", c.Name(), "events", len(perSource[i]))
		a.metrics.EventsFetched.WithLabelValues(c.Name()).Add(float64(len(perSource[i])))
		counts[c.Name()] = len(perSource[i])
		live = append(live, perSource[i]...)
	}

	if len(live) == 0 {
		return a.fallbackResult(start)
	}

	deduped := dedup.FastDeduplicateEvents(live, a.threshold)
	stats := dedup.CollectStats(live, deduped, nil)
	a.metrics.DedupRemoved.Add(float64(stats.RemovedCount))

	events := padWithFallback(deduped, a.minEvents)

	state := StateSuccess
	if failures > 0 {
		state = StateDegraded
	}
	a.setState(state)
	a.ready.Store(true)
	a.metrics.BatchSize.Set(float64(len(events)))
	a.metrics.FetchCycleDuration.Observe(time.Since(start).Seconds())
	a.logger.Info("fetch cycle complete",
		"state", state,
		"live", len(live),
		"deduplicated", len(deduped),
		"batch", len(events),
		"failed_sources", failures,
	)

	return Result{
		Events:       events,
		Stats:        stats,
		SourceCounts: counts,
		State:        state,
		FetchedAt:    start.UTC(),
	}
}

// fallbackResult serves the demo dataset verbatim when the live path yielded
// nothing.
func (a *Aggregator) fallbackResult(start time.Time) Result {
	events := domain.FallbackEvents()
	a.setState(StateFallback)
	a.ready.Store(true)
	a.metrics.FallbackServed.Inc()
	a.metrics.BatchSize.Set(float64(len(events)))
	a.metrics.FetchCycleDuration.Observe(time.Since(start).Seconds())
	a.logger.Warn("serving fallback dataset", "events", len(events))

	return Result{
		Events:       events,
		Stats:        dedup.Stats{},
		SourceCounts: map[string]int{},
		State:        StateFallback,
		FetchedAt:    start.UTC(),
	}
}

// padWithFallback tops a sparse batch up to min events with demo entries,
// keeping the live events first.
func padWithFallback(events []domain.Event, min int) []domain.Event {
	if len(events) >= min {
		return events
	}
	missing := min - len(events)
	fallback := domain.FallbackEvents()
	if missing > len(fallback) {
		missing = len(fallback)
	}
	return append(events, fallback[:missing]...)
}
