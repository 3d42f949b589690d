package geocode

import "regexp"

// locationPatterns capture candidate place names from headlines and report
// bodies. Order matters: stronger cues come first so the resolver tries the
// most promising candidates before the loose headline pattern.
var locationPatterns = []*regexp.Regexp{
	// "in Kharkiv", "in Port Sudan"
	regexp.MustCompile(`\bin\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`),
	// "Kharkiv region", "Idlib province"
	regexp.MustCompile(`(?i)([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)\s+(?:city|region|province|oblast|district|governorate)`),
	// "near Bakhmut", "outside Aleppo"
	regexp.MustCompile(`(?i)(?:near|at|around|outside)\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`),
	// capitalized words after ":" or "-" in headlines
	regexp.MustCompile(`[:|-]\s*([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`),
}

// ExtractLocationNames pulls candidate place names out of free text. Results
// keep first-seen order with duplicates removed.
func ExtractLocationNames(text string) []string {
	var locations []string
	seen := make(map[string]bool)

	for _, pattern := range locationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := match[1]
			if len(candidate) <= 2 || seen[candidate] {
				continue
			}
			seen[candidate] = true
			locations = append(locations, candidate)
		}
	}
	return locations
}
