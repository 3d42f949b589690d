package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventDefaults(t *testing.T) {
	frozen := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	t.Cleanup(func() { SetClock(nil) })

	e := NewEvent("Shelling reported in Kharkiv", Coordinates{Lon: 36.23, Lat: 49.99}, CategoryShelling, SeverityHigh)

	assert.NotEmpty(t, e.ID)
	assert.True(t, strings.HasPrefix(e.ID, "live-"))
	assert.Equal(t, frozen, e.EventDate)
	assert.Nil(t, e.Description)
	assert.NotNil(t, e.MediaURLs)
	assert.NotNil(t, e.Tags)
	require.NoError(t, e.Validate())
}

func TestTruncateTitle(t *testing.T) {
	long := strings.Repeat("a", 150)
	assert.Len(t, TruncateTitle(long), MaxTitleLen)
	assert.Equal(t, "short", TruncateTitle("short"))
}

func TestTruncateTitleMultibyte(t *testing.T) {
	long := strings.Repeat("ü", 120)
	got := TruncateTitle(long)
	assert.Equal(t, MaxTitleLen, len([]rune(got)))
	assert.Equal(t, strings.Repeat("ü", MaxTitleLen), got)
}

func TestTruncateDescription(t *testing.T) {
	assert.Nil(t, TruncateDescription(""))

	long := strings.Repeat("b", 400)
	got := TruncateDescription(long)
	require.NotNil(t, got)
	assert.Len(t, *got, MaxDescriptionLen)
}

func TestEventValidate(t *testing.T) {
	base := NewEvent("title", Coordinates{}, CategoryCombat, SeverityLow)

	tests := []struct {
		name    string
		mutate  func(*Event)
		wantErr string
	}{
		{"valid", func(*Event) {}, ""},
		{"missing id", func(e *Event) { e.ID = "" }, "missing id"},
		{"missing title", func(e *Event) { e.Title = "" }, "missing title"},
		{"bad category", func(e *Event) { e.Category = "volcano" }, "taxonomy"},
		{"bad severity", func(e *Event) { e.Severity = "extreme" }, "severity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := base
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSeverityRankOrdering(t *testing.T) {
	assert.Less(t, SeverityLow.Rank(), SeverityMedium.Rank())
	assert.Less(t, SeverityMedium.Rank(), SeverityHigh.Rank())
	assert.Less(t, SeverityHigh.Rank(), SeverityCritical.Rank())
	assert.Equal(t, -1, Severity("nope").Rank())
}

func TestFallbackEvents(t *testing.T) {
	events := FallbackEvents()
	assert.Len(t, events, 20)

	seen := make(map[string]bool)
	for _, e := range events {
		require.NoError(t, e.Validate(), "fallback event %s", e.ID)
		assert.False(t, seen[e.ID], "duplicate fallback id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestConflictZones(t *testing.T) {
	zones := ConflictZones()
	require.NotEmpty(t, zones)
	for _, z := range zones {
		assert.NotEmpty(t, z.ID)
		assert.NotEmpty(t, z.Boundary)
		assert.True(t, z.Intensity == IntensityLow || z.Intensity == IntensityMedium ||
			z.Intensity == IntensityHigh || z.Intensity == IntensityCritical)
	}
}
