package dedup

import (
	"fmt"
	"sort"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// bucketCutover is the batch size at which deduplication switches from plain
// pairwise comparison to coarse bucketing.
const bucketCutover = 100

// ScoredDuplicate pairs a cluster member with the score that attached it.
type ScoredDuplicate struct {
	Event domain.Event
	Score DuplicateScore
}

// Cluster groups a primary event with the later events scored as its
// duplicates.
type Cluster struct {
	Primary    domain.Event
	Duplicates []ScoredDuplicate
}

// Members returns the primary followed by its duplicates.
func (c Cluster) Members() []domain.Event {
	members := make([]domain.Event, 0, 1+len(c.Duplicates))
	members = append(members, c.Primary)
	for _, d := range c.Duplicates {
		members = append(members, d.Event)
	}
	return members
}

// FindDuplicateClusters runs the single-pass greedy clustering: events are
// walked in input order; each not-yet-assigned event is compared against all
// later unassigned events, and any pair scoring at or above the threshold
// joins the earlier event's cluster and is marked processed. The result is
// order-dependent and not transitive-closure-complete, but deterministic.
func FindDuplicateClusters(events []domain.Event, threshold float64) []Cluster {
	var clusters []Cluster
	processed := make(map[string]bool, len(events))

	for i, e1 := range events {
		if processed[e1.ID] {
			continue
		}

		var duplicates []ScoredDuplicate
		for _, e2 := range events[i+1:] {
			if processed[e2.ID] {
				continue
			}
			score := CalculateDuplicateScore(e1, e2)
			if score.Score >= threshold {
				duplicates = append(duplicates, ScoredDuplicate{Event: e2, Score: score})
				processed[e2.ID] = true
			}
		}

		if len(duplicates) > 0 {
			clusters = append(clusters, Cluster{Primary: e1, Duplicates: duplicates})
			processed[e1.ID] = true
		}
	}

	return clusters
}

// rankBetter reports whether a should survive over b when eliminating
// duplicates: verified beats unverified, then more tags, then a description
// longer by more than 50 characters, then the more recent event date.
func rankBetter(a, b domain.Event) bool {
	if a.Verified != b.Verified {
		return a.Verified
	}
	if len(a.Tags) != len(b.Tags) {
		return len(a.Tags) > len(b.Tags)
	}
	descA, descB := a.DescriptionLen(), b.DescriptionLen()
	if diff := descA - descB; diff > 50 || diff < -50 {
		return descA > descB
	}
	return a.EventDate.After(b.EventDate)
}

// DeduplicateEvents removes duplicates, keeping the best-ranked event of each
// cluster, and preserves the input order of the survivors.
func DeduplicateEvents(events []domain.Event, threshold float64) []domain.Event {
	clusters := FindDuplicateClusters(events, threshold)
	toRemove := make(map[string]bool)

	for _, cluster := range clusters {
		members := cluster.Members()
		sort.SliceStable(members, func(i, j int) bool {
			return rankBetter(members[i], members[j])
		})
		for _, loser := range members[1:] {
			toRemove[loser.ID] = true
		}
	}

	return filterRemoved(events, toRemove)
}

// bucketKey groups events into a 4-hour time window and 1-degree-rounded
// coordinate cell so pairwise comparison stays local.
func bucketKey(e domain.Event) string {
	d := e.EventDate.UTC()
	return fmt.Sprintf("%d-%d-%d-%d|%.0f_%.0f",
		d.Year(), d.Month(), d.Day(), d.Hour()/4,
		e.Coordinates.Lat, e.Coordinates.Lon)
}

// FastDeduplicateEvents is the bucketed path for large batches: events are
// grouped by coarse time/location key and full pairwise comparison runs only
// within each bucket. Cross-bucket duplicates are accepted as false negatives
// in exchange for bounded latency. Batches below the cutover take the plain
// pairwise path, so both functions agree on small inputs.
func FastDeduplicateEvents(events []domain.Event, threshold float64) []domain.Event {
	if len(events) < bucketCutover {
		return DeduplicateEvents(events, threshold)
	}

	buckets := make(map[string][]domain.Event)
	for _, e := range events {
		key := bucketKey(e)
		buckets[key] = append(buckets[key], e)
	}

	toRemove := make(map[string]bool)
	for _, bucket := range buckets {
		if len(bucket) < 2 {
			continue
		}
		for _, cluster := range FindDuplicateClusters(bucket, threshold) {
			members := cluster.Members()
			sort.SliceStable(members, func(i, j int) bool {
				return rankBetter(members[i], members[j])
			})
			for _, loser := range members[1:] {
				toRemove[loser.ID] = true
			}
		}
	}

	return filterRemoved(events, toRemove)
}

func filterRemoved(events []domain.Event, toRemove map[string]bool) []domain.Event {
	if len(toRemove) == 0 {
		return events
	}
	kept := make([]domain.Event, 0, len(events)-len(toRemove))
	for _, e := range events {
		if !toRemove[e.ID] {
			kept = append(kept, e)
		}
	}
	return kept
}

// MergeEvents combines a cluster into one record instead of eliminating: the
// best-ranked member is the base, tags and media URLs are unioned across all
// members, the longest description wins, and the result is verified if any
// member is. Merging and elimination are alternative strategies over the same
// clustering, not layered.
func MergeEvents(events []domain.Event) (domain.Event, error) {
	if len(events) == 0 {
		return domain.Event{}, fmt.Errorf("merge: no events")
	}
	if len(events) == 1 {
		return events[0], nil
	}

	sorted := make([]domain.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rankBetter(sorted[i], sorted[j])
	})
	merged := sorted[0]

	tagSet := make(map[string]bool)
	var tags []string
	mediaSet := make(map[string]bool)
	var media []string
	bestDesc := merged.Description
	verified := false

	for _, e := range events {
		for _, tag := range e.Tags {
			if !tagSet[tag] {
				tagSet[tag] = true
				tags = append(tags, tag)
			}
		}
		for _, url := range e.MediaURLs {
			if !mediaSet[url] {
				mediaSet[url] = true
				media = append(media, url)
			}
		}
		if e.Description != nil && (bestDesc == nil || len(*e.Description) > len(*bestDesc)) {
			bestDesc = e.Description
		}
		if e.Verified {
			verified = true
		}
	}

	merged.Tags = tags
	merged.MediaURLs = media
	merged.Description = bestDesc
	merged.Verified = verified
	return merged, nil
}

// Stats summarizes the effect of one deduplication run.
type Stats struct {
	OriginalCount      int     `json:"originalCount"`
	DeduplicatedCount  int     `json:"deduplicatedCount"`
	RemovedCount       int     `json:"removedCount"`
	ClusterCount       int     `json:"clusterCount"`
	AverageClusterSize float64 `json:"averageClusterSize"`
}

// CollectStats builds a Stats summary from the input, output, and clusters of
// a deduplication run.
func CollectStats(original, deduplicated []domain.Event, clusters []Cluster) Stats {
	totalInClusters := 0
	for _, c := range clusters {
		totalInClusters += 1 + len(c.Duplicates)
	}

	stats := Stats{
		OriginalCount:     len(original),
		DeduplicatedCount: len(deduplicated),
		RemovedCount:      len(original) - len(deduplicated),
		ClusterCount:      len(clusters),
	}
	if len(clusters) > 0 {
		stats.AverageClusterSize = float64(totalInClusters) / float64(len(clusters))
	}
	return stats
}
