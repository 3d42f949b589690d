package dedup

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

var testTime = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

func makeEvent(id, title string, lon, lat float64, at time.Time, category domain.Category) domain.Event {
	return domain.Event{
		ID:          id,
		Title:       title,
		Category:    category,
		Severity:    domain.SeverityHigh,
		Coordinates: domain.Coordinates{Lon: lon, Lat: lat},
		EventDate:   at,
		MediaURLs:   []string{},
		Tags:        []string{},
	}
}

func eventIDs(events []domain.Event) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}

func TestKharkivShellingScenario(t *testing.T) {
	// Two sources reporting the same incident: 5 km apart, 1 hour apart,
	// same category. Must score at or above the default threshold.
	e1 := makeEvent("a", "Shelling reported in Kharkiv", 36.2304, 49.9935, testTime, domain.CategoryShelling)
	e2 := makeEvent("b", "Heavy shelling hits Kharkiv", 36.2304, 50.0385, testTime.Add(time.Hour), domain.CategoryShelling)

	assert.InDelta(t, 5, HaversineDistance(e1.Coordinates, e2.Coordinates), 0.2)

	score := CalculateDuplicateScore(e1, e2)
	assert.GreaterOrEqual(t, score.Score, DefaultThreshold)

	result := DeduplicateEvents([]domain.Event{e1, e2}, DefaultThreshold)
	assert.Len(t, result, 1)
}

func TestDistinctEventsSurvive(t *testing.T) {
	e1 := makeEvent("a", "Shelling reported in Kharkiv", 36.23, 49.99, testTime, domain.CategoryShelling)
	e2 := makeEvent("b", "Protest blocks central Tbilisi avenue", 44.78, 41.72, testTime, domain.CategoryProtest)

	result := DeduplicateEvents([]domain.Event{e1, e2}, DefaultThreshold)
	assert.Len(t, result, 2)
}

func TestDeduplicateIdempotent(t *testing.T) {
	events := []domain.Event{
		makeEvent("a", "Shelling reported in Kharkiv", 36.23, 49.99, testTime, domain.CategoryShelling),
		makeEvent("b", "Heavy shelling hits Kharkiv", 36.25, 50.02, testTime.Add(time.Hour), domain.CategoryShelling),
		makeEvent("c", "Drone intercepted over Moscow", 37.62, 55.75, testTime, domain.CategoryDrone),
		makeEvent("d", "Protest in Tehran", 51.39, 35.69, testTime, domain.CategoryProtest),
	}

	first := DeduplicateEvents(events, DefaultThreshold)
	second := DeduplicateEvents(first, DefaultThreshold)

	assert.Equal(t, eventIDs(first), eventIDs(second))
}

func TestThresholdMonotonicity(t *testing.T) {
	events := []domain.Event{
		makeEvent("a", "Shelling reported in Kharkiv", 36.23, 49.99, testTime, domain.CategoryShelling),
		makeEvent("b", "Heavy shelling hits Kharkiv", 36.25, 50.02, testTime.Add(time.Hour), domain.CategoryShelling),
		makeEvent("c", "Shelling near Kharkiv outskirts", 36.30, 49.95, testTime.Add(2*time.Hour), domain.CategoryShelling),
		makeEvent("d", "Drone intercepted over Moscow", 37.62, 55.75, testTime, domain.CategoryDrone),
		makeEvent("e", "Explosion in Moscow suburb", 37.60, 55.70, testTime.Add(time.Hour), domain.CategoryExplosion),
	}

	prevKept := -1
	for _, threshold := range []float64{0.3, 0.5, 0.65, 0.8, 0.95} {
		kept := len(DeduplicateEvents(events, threshold))
		if prevKept >= 0 {
			assert.GreaterOrEqual(t, kept, prevKept,
				"raising threshold to %.2f must not remove more events", threshold)
		}
		prevKept = kept
	}
}

func TestFastAgreesWithNaiveBelowCutover(t *testing.T) {
	events := make([]domain.Event, 0, 40)
	for i := 0; i < 20; i++ {
		at := testTime.Add(time.Duration(i) * time.Minute)
		events = append(events,
			makeEvent(fmt.Sprintf("a%d", i), fmt.Sprintf("Shelling reported in sector %d", i),
				36.0+float64(i)*0.01, 49.0, at, domain.CategoryShelling),
			makeEvent(fmt.Sprintf("b%d", i), fmt.Sprintf("Heavy shelling hits sector %d", i),
				36.0+float64(i)*0.01, 49.02, at.Add(time.Hour), domain.CategoryShelling),
		)
	}
	require.Less(t, len(events), bucketCutover)

	naive := eventIDs(DeduplicateEvents(events, DefaultThreshold))
	fast := eventIDs(FastDeduplicateEvents(events, DefaultThreshold))
	sort.Strings(naive)
	sort.Strings(fast)

	if diff := cmp.Diff(naive, fast); diff != "" {
		t.Errorf("fast and naive paths disagree (-naive +fast):\n%s", diff)
	}
}

func TestFastDeduplicateLargeBatch(t *testing.T) {
	events := make([]domain.Event, 0, 120)
	for i := 0; i < 60; i++ {
		// Spread pairs across distinct degree cells so each bucket holds one pair.
		lat := 10.0 + float64(i)
		if i >= 30 {
			lat = -10.0 - float64(i-30)
		}
		at := testTime
		events = append(events,
			makeEvent(fmt.Sprintf("a%d", i), "Artillery fire reported near frontline", 30.0, lat, at, domain.CategoryShelling),
			makeEvent(fmt.Sprintf("b%d", i), "Artillery fire reported near frontline", 30.05, lat+0.05, at.Add(30*time.Minute), domain.CategoryShelling),
		)
	}
	require.GreaterOrEqual(t, len(events), bucketCutover)

	// Every pair shares a degree cell, so the bucketed path sees each pair.
	result := FastDeduplicateEvents(events, DefaultThreshold)
	assert.Len(t, result, len(events)/2)
}

func TestClusterSurvivorRanking(t *testing.T) {
	verified := makeEvent("v", "Shelling reported in Kharkiv", 36.23, 49.99, testTime, domain.CategoryShelling)
	verified.Verified = true

	unverified := makeEvent("u", "Shelling reported in Kharkiv city", 36.24, 50.00, testTime.Add(time.Hour), domain.CategoryShelling)
	unverified.Tags = []string{"rss", "extra", "tags"}

	result := DeduplicateEvents([]domain.Event{unverified, verified}, DefaultThreshold)
	require.Len(t, result, 1)
	assert.Equal(t, "v", result[0].ID, "verified event must survive over tag-rich unverified one")
}

func TestTagCountBreaksTie(t *testing.T) {
	a := makeEvent("a", "Drone attack on depot reported", 30.0, 50.0, testTime, domain.CategoryDrone)
	a.Tags = []string{"one"}
	b := makeEvent("b", "Drone attack on depot reported", 30.0, 50.0, testTime, domain.CategoryDrone)
	b.Tags = []string{"one", "two"}

	result := DeduplicateEvents([]domain.Event{a, b}, DefaultThreshold)
	require.Len(t, result, 1)
	assert.Equal(t, "b", result[0].ID)
}

func TestMergeEvents(t *testing.T) {
	short := "Brief report."
	long := "A much longer description carrying additional detail about the incident and its aftermath."

	a := makeEvent("a", "Shelling reported in Kharkiv", 36.23, 49.99, testTime, domain.CategoryShelling)
	a.Description = &short
	a.Tags = []string{"rss", "kharkiv"}
	a.MediaURLs = []string{"https://example.com/1.jpg"}

	b := makeEvent("b", "Heavy shelling hits Kharkiv", 36.24, 50.00, testTime.Add(time.Hour), domain.CategoryShelling)
	b.Description = &long
	b.Verified = true
	b.Tags = []string{"kharkiv", "agency"}
	b.MediaURLs = []string{"https://example.com/2.jpg"}

	merged, err := MergeEvents([]domain.Event{a, b})
	require.NoError(t, err)

	assert.Equal(t, "b", merged.ID, "verified member is the base")
	assert.True(t, merged.Verified)
	require.NotNil(t, merged.Description)
	assert.Equal(t, long, *merged.Description)
	assert.ElementsMatch(t, []string{"rss", "kharkiv", "agency"}, merged.Tags)
	assert.ElementsMatch(t, []string{"https://example.com/1.jpg", "https://example.com/2.jpg"}, merged.MediaURLs)
}

func TestMergeEventsEdgeCases(t *testing.T) {
	_, err := MergeEvents(nil)
	assert.Error(t, err)

	single := makeEvent("only", "Single report", 30.0, 50.0, testTime, domain.CategoryCombat)
	merged, err := MergeEvents([]domain.Event{single})
	require.NoError(t, err)
	assert.Equal(t, single.ID, merged.ID)
}

func TestCollectStats(t *testing.T) {
	events := []domain.Event{
		makeEvent("a", "Shelling reported in Kharkiv", 36.23, 49.99, testTime, domain.CategoryShelling),
		makeEvent("b", "Heavy shelling hits Kharkiv", 36.25, 50.02, testTime.Add(time.Hour), domain.CategoryShelling),
		makeEvent("c", "Drone intercepted over Moscow", 37.62, 55.75, testTime, domain.CategoryDrone),
	}

	clusters := FindDuplicateClusters(events, DefaultThreshold)
	deduped := DeduplicateEvents(events, DefaultThreshold)
	stats := CollectStats(events, deduped, clusters)

	assert.Equal(t, 3, stats.OriginalCount)
	assert.Equal(t, 2, stats.DeduplicatedCount)
	assert.Equal(t, 1, stats.RemovedCount)
	assert.Equal(t, 1, stats.ClusterCount)
	assert.Equal(t, 2.0, stats.AverageClusterSize)
}
