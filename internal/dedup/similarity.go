// Package dedup collapses near-duplicate event reports that independent
// sources describe with different wording, slightly different coordinates,
// and drifting timestamps. No shared identifier exists across sources, so
// duplication is decided from a weighted composite of title, location,
// temporal, and category similarity.
package dedup

import (
	"math"
	"strings"
	"time"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

const earthRadiusKM = 6371.0

// levenshteinDistance computes the edit distance between two strings using
// two rolling rows instead of the full matrix.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(r2)]
}

// StringSimilarity returns normalized Levenshtein similarity in [0,1]:
// 1 - editDistance/max(len1,len2), case-folded and trimmed. Either side
// being empty yields 0.
func StringSimilarity(s1, s2 string) float64 {
	if s1 == "" || s2 == "" {
		return 0
	}

	a := strings.ToLower(strings.TrimSpace(s1))
	b := strings.ToLower(strings.TrimSpace(s2))
	if a == b {
		return 1
	}

	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(levenshteinDistance(a, b))/float64(maxLen)
}

// JaccardSimilarity compares the word sets of two strings, ignoring words of
// two characters or fewer, case-folded.
func JaccardSimilarity(s1, s2 string) float64 {
	if s1 == "" || s2 == "" {
		return 0
	}

	set1 := wordSet(s1)
	set2 := wordSet(s2)
	if len(set1) == 0 || len(set2) == 0 {
		return 0
	}

	intersection := 0
	for w := range set1 {
		if set2[w] {
			intersection++
		}
	}
	union := len(set1) + len(set2) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if len([]rune(w)) > 2 {
			set[w] = true
		}
	}
	return set
}

// HaversineDistance returns the great-circle distance in kilometers between
// two coordinate pairs.
func HaversineDistance(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKM * c
}

// TemporalSimilarity decays linearly from 1 (same instant) to 0 at maxHours
// apart.
func TemporalSimilarity(t1, t2 time.Time, maxHours float64) float64 {
	diffHours := math.Abs(t1.Sub(t2).Hours())
	if diffHours >= maxHours {
		return 0
	}
	return 1 - diffHours/maxHours
}
