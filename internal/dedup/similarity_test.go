package dedup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

func TestStringSimilarity(t *testing.T) {
	t.Run("identical strings", func(t *testing.T) {
		assert.Equal(t, 1.0, StringSimilarity("Shelling in Kharkiv", "Shelling in Kharkiv"))
	})

	t.Run("empty side is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, StringSimilarity("", "anything"))
		assert.Equal(t, 0.0, StringSimilarity("anything", ""))
		assert.Equal(t, 0.0, StringSimilarity("", ""))
	})

	t.Run("symmetric", func(t *testing.T) {
		a, b := "Heavy shelling hits Kharkiv", "Shelling reported in Kharkiv"
		assert.Equal(t, StringSimilarity(a, b), StringSimilarity(b, a))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, 1.0, StringSimilarity("KHARKIV", "kharkiv"))
	})

	t.Run("bounded", func(t *testing.T) {
		s := StringSimilarity("completely different words", "nothing in common here xyz")
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	})
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, levenshteinDistance(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestJaccardSimilarity(t *testing.T) {
	t.Run("identical word sets reordered", func(t *testing.T) {
		assert.Equal(t, 1.0, JaccardSimilarity("shelling kharkiv reported", "reported shelling kharkiv"))
	})

	t.Run("short words ignored", func(t *testing.T) {
		// "in" and "at" are <=2 chars and do not count as words.
		assert.Equal(t, 1.0, JaccardSimilarity("fighting in kharkiv", "fighting at kharkiv"))
	})

	t.Run("disjoint sets", func(t *testing.T) {
		assert.Equal(t, 0.0, JaccardSimilarity("alpha bravo", "charlie delta"))
	})

	t.Run("empty is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, JaccardSimilarity("", "words"))
	})
}

func TestHaversineDistance(t *testing.T) {
	kyiv := domain.Coordinates{Lon: 30.5234, Lat: 50.4501}
	kharkiv := domain.Coordinates{Lon: 36.2304, Lat: 49.9935}

	t.Run("zero to self", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(kyiv, kyiv))
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, HaversineDistance(kyiv, kharkiv), HaversineDistance(kharkiv, kyiv), 1e-9)
	})

	t.Run("known distance", func(t *testing.T) {
		// Kyiv to Kharkiv is roughly 410 km great-circle.
		d := HaversineDistance(kyiv, kharkiv)
		assert.InDelta(t, 410, d, 15)
	})
}

func TestTemporalSimilarity(t *testing.T) {
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1.0, TemporalSimilarity(base, base, 48))
	assert.InDelta(t, 0.5, TemporalSimilarity(base, base.Add(24*time.Hour), 48), 1e-9)
	assert.Equal(t, 0.0, TemporalSimilarity(base, base.Add(48*time.Hour), 48))
	assert.Equal(t, 0.0, TemporalSimilarity(base, base.Add(100*time.Hour), 48))

	// Direction does not matter.
	assert.Equal(t,
		TemporalSimilarity(base, base.Add(6*time.Hour), 48),
		TemporalSimilarity(base.Add(6*time.Hour), base, 48))
}
