// Command fetch runs a single aggregation cycle and prints the resulting
// batch as JSON, with the dedup summary on stderr.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/globalobserver/crisis-events-service/internal/aggregate"
	"github.com/globalobserver/crisis-events-service/internal/dedup"
	"github.com/globalobserver/crisis-events-service/internal/observability"
	"github.com/globalobserver/crisis-events-service/internal/source"
)

func main() {
	timeout := flag.Duration("timeout", aggregate.DefaultTimeout, "global fetch timeout")
	threshold := flag.Float64("threshold", dedup.DefaultThreshold, "dedup score threshold")
	minEvents := flag.Int("min", aggregate.DefaultMinEvents, "pad batch up to this many events")
	pretty := flag.Bool("pretty", false, "indent JSON output")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	metrics := observability.NewMetrics()

	sourceTimeout := 10 * time.Second
	connectors := []source.Connector{
		source.NewGDELT("", sourceTimeout, logger),
		source.NewReliefWeb("", sourceTimeout, logger),
		source.NewRSS(sourceTimeout, logger),
		source.NewEONET("", sourceTimeout, logger),
		source.NewUSGS("", sourceTimeout, logger),
		source.NewWikipedia("", sourceTimeout, logger),
	}

	aggregator := aggregate.New(connectors, logger, metrics, *timeout, *threshold, *minEvents)
	result := aggregator.FetchAll(context.Background())

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result.Events); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "state=%s events=%d original=%d removed=%d\n",
		result.State, len(result.Events), result.Stats.OriginalCount, result.Stats.RemovedCount)
}
