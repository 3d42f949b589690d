// Package httpapi exposes the aggregated event feed, conflict-zone metadata,
// and operational endpoints over HTTP.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/globalobserver/crisis-events-service/internal/aggregate"
	"github.com/globalobserver/crisis-events-service/internal/domain"
	"github.com/globalobserver/crisis-events-service/internal/geocode"
	"github.com/globalobserver/crisis-events-service/internal/observability"
	"github.com/globalobserver/crisis-events-service/internal/store"
)

// Fetcher runs one aggregation cycle on demand.
type Fetcher interface {
	FetchAll(ctx context.Context) aggregate.Result
	State() aggregate.State
	CheckReadiness(ctx context.Context) error
}

// Server wraps a gin engine with the API routes plus health, readiness, and
// metrics endpoints.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	fetcher    Fetcher
	snapshot   *store.Snapshot
	resolver   *geocode.Resolver
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates the API server. resolver may be nil, which disables the
// geocode endpoint.
func NewServer(addr string, fetcher Fetcher, snapshot *store.Snapshot, resolver *geocode.Resolver, metrics *observability.Metrics, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      engine,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		engine:   engine,
		fetcher:  fetcher,
		snapshot: snapshot,
		resolver: resolver,
		metrics:  metrics,
		logger:   logger,
	}

	api := engine.Group("/api")
	api.GET("/events", s.handleEvents)
	api.GET("/zones", s.handleZones)
	api.POST("/refresh", s.handleRefresh)
	api.GET("/geocode", s.handleGeocode)

	engine.GET("/healthz", s.handleHealth)
	engine.GET("/readyz", s.handleReady)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Refresh runs one aggregation cycle and stores the result. Shared by the
// refresh endpoint and the scheduler.
func (s *Server) Refresh(ctx context.Context) aggregate.Result {
	result := s.fetcher.FetchAll(ctx)
	s.snapshot.Update(result.Events, result.Stats, result.FetchedAt)
	return result
}

// handleEvents serves the latest batch, fetching on demand when no cycle has
// run yet.
func (s *Server) handleEvents(c *gin.Context) {
	if s.snapshot.Empty() {
		s.Refresh(c.Request.Context())
	}

	events, updatedAt := s.snapshot.Events()
	c.JSON(http.StatusOK, gin.H{
		"events":    events,
		"count":     len(events),
		"state":     s.fetcher.State(),
		"updatedAt": updatedAt,
	})
}

func (s *Server) handleZones(c *gin.Context) {
	zones := domain.ConflictZones()
	c.JSON(http.StatusOK, gin.H{
		"zones": zones,
		"count": len(zones),
	})
}

func (s *Server) handleRefresh(c *gin.Context) {
	result := s.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"state":        result.State,
		"count":        len(result.Events),
		"stats":        result.Stats,
		"sourceCounts": result.SourceCounts,
		"fetchedAt":    result.FetchedAt,
	})
}

func (s *Server) handleGeocode(c *gin.Context) {
	if s.resolver == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "geocoding disabled"})
		return
	}
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}

	resolution, ok := s.resolver.Resolve(c.Request.Context(), query)
	if !ok {
		s.metrics.GeocodeRequests.WithLabelValues("miss").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "no location found"})
		return
	}

	s.metrics.GeocodeRequests.WithLabelValues("resolved").Inc()
	c.JSON(http.StatusOK, gin.H{
		"coordinates": resolution.Coordinates,
		"confidence":  resolution.Confidence,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleReady(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.fetcher.CheckReadiness(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
