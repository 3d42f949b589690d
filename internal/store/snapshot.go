// Package store holds the most recent event batch in memory for the API
// layer to serve between fetch cycles.
package store

import (
	"sync"
	"time"

	"github.com/globalobserver/crisis-events-service/internal/dedup"
	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// Snapshot is the latest produced batch behind a mutex. The zero value is
// empty and usable.
type Snapshot struct {
	mu        sync.RWMutex
	events    []domain.Event
	stats     dedup.Stats
	updatedAt time.Time
}

func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Update replaces the stored batch.
func (s *Snapshot) Update(events []domain.Event, stats dedup.Stats, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append([]domain.Event(nil), events...)
	s.stats = stats
	s.updatedAt = at
}

// Events returns a copy of the stored batch and when it was produced.
func (s *Snapshot) Events() ([]domain.Event, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Event(nil), s.events...), s.updatedAt
}

// Stats returns the deduplication summary of the stored batch.
func (s *Snapshot) Stats() dedup.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Empty reports whether no batch has been stored yet.
func (s *Snapshot) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt.IsZero()
}
