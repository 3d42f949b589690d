package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/globalobserver/crisis-events-service/internal/adapter/httpapi"
	kafkaadapter "github.com/globalobserver/crisis-events-service/internal/adapter/kafka"
	"github.com/globalobserver/crisis-events-service/internal/adapter/nominatim"
	"github.com/globalobserver/crisis-events-service/internal/aggregate"
	"github.com/globalobserver/crisis-events-service/internal/config"
	"github.com/globalobserver/crisis-events-service/internal/domain"
	"github.com/globalobserver/crisis-events-service/internal/geocode"
	"github.com/globalobserver/crisis-events-service/internal/observability"
	"github.com/globalobserver/crisis-events-service/internal/source"
	"github.com/globalobserver/crisis-events-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	connectors := []source.Connector{
		source.NewGDELT("", cfg.SourceTimeout, logger),
		source.NewReliefWeb("", cfg.SourceTimeout, logger),
		source.NewRSS(cfg.SourceTimeout, logger),
		source.NewEONET("", cfg.SourceTimeout, logger),
		source.NewUSGS("", cfg.SourceTimeout, logger),
		source.NewWikipedia("", cfg.SourceTimeout, logger),
	}

	aggregator := aggregate.New(connectors, logger, metrics,
		cfg.FetchTimeout, cfg.DedupThreshold, cfg.MinEvents)
	snapshot := store.NewSnapshot()

	// Geocoding is on by default since Nominatim needs no token; the rate
	// gate keeps requests inside its usage policy.
	var resolver *geocode.Resolver
	if cfg.GeocodeEnabled {
		client := nominatim.NewClient(cfg.NominatimBaseURL, cfg.NominatimTimeout, logger)
		var geocoder domain.Geocoder = geocode.NewRateLimitedGeocoder(client, cfg.GeocodeRateInterval)
		geocoder = geocode.NewCachedGeocoder(geocoder, cfg.GeocodeCacheSize, cfg.GeocodeCacheTTL)
		resolver = geocode.NewResolver(geocoder, logger)
		logger.Info("geocoding enabled",
			"cache_size", cfg.GeocodeCacheSize,
			"rate_interval", cfg.GeocodeRateInterval,
		)
	} else {
		resolver = geocode.NewResolver(nil, logger)
		logger.Info("external geocoding disabled, gazetteer only")
	}

	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled() {
		writer = kafkaadapter.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		logger.Info("kafka publishing enabled", "topic", cfg.KafkaTopic)
	}

	srv := httpapi.NewServer(cfg.HTTPAddr, aggregator, snapshot, resolver, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	refresh := func() {
		result := srv.Refresh(ctx)
		if writer == nil || result.State == aggregate.StateFallback {
			return
		}
		if err := writer.PublishBatch(ctx, result.Events); err != nil {
			logger.Error("kafka publish failed", "error", err, "events", len(result.Events))
		}
	}

	// First cycle immediately, then on the refresh schedule.
	go refresh()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every "+cfg.RefreshInterval.String(), refresh); err != nil {
		logger.Error("failed to schedule refresh", "error", err)
		os.Exit(1)
	}
	scheduler.Start()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	<-scheduler.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
