package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateID produces a batch-unique event ID from the ingestion timestamp
// and a random suffix. Collisions within one batch are treated as negligible.
func GenerateID() string {
	return fmt.Sprintf("live-%d-%s", clock.Now().UnixMilli(), uuid.NewString()[:8])
}

// categoryRule maps a keyword group to a taxonomy value. Rules are evaluated
// in order, first match wins.
type categoryRule struct {
	keywords []string
	category Category
}

var categoryRules = []categoryRule{
	{[]string{"terror", "bombing", "suicide"}, CategoryTerrorism},
	{[]string{"protest", "demonstration", "riot"}, CategoryProtest},
	{[]string{"weapon", "arms", "nuclear", "missile"}, CategoryWeapons},
	{[]string{"explosion", "bomb", "blast"}, CategoryExplosion},
	{[]string{"airstrike", "air strike", "air raid"}, CategoryAirRaid},
	{[]string{"drone", "uav"}, CategoryDrone},
	{[]string{"shell", "artillery", "rocket"}, CategoryShelling},
	{[]string{"combat", "battle", "fight", "clash"}, CategoryCombat},
	{[]string{"naval", "ship", "maritime"}, CategoryNaval},
	{[]string{"humanitarian", "refugee", "aid"}, CategoryHumanitarian},
	{[]string{"politic", "election", "government", "diplomac"}, CategoryPolitical},
	{[]string{"infrastructure", "power", "bridge"}, CategoryInfrastructure},
	{[]string{"troop", "movement", "convoy"}, CategoryMovement},
}

// MapToCategory infers a category from thematic tags and a title by running
// the ordered keyword cascade over the merged lowercase text. This is a
// keyword heuristic, not a classifier; unmatched text lands in the generic
// combat bucket.
func MapToCategory(themes []string, title string) Category {
	parts := make([]string, 0, len(themes)+1)
	parts = append(parts, themes...)
	parts = append(parts, title)
	text := strings.ToLower(strings.Join(parts, " "))

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return CategoryCombat
}

// severityRule maps a keyword group to a severity level, evaluated in order.
type severityRule struct {
	keywords []string
	severity Severity
}

var severityRules = []severityRule{
	{[]string{"massacre", "mass casualt", "dozens killed", "hundreds", "terror attack", "nuclear"}, SeverityCritical},
	{[]string{"killed", "dead", "casualt", "explosion", "airstrike", "bombing"}, SeverityHigh},
	{[]string{"injured", "wounded", "clash", "protest", "demonstration"}, SeverityMedium},
}

// DetermineSeverity infers a severity level from title and optional body
// text. Mass-casualty and terror language ranks critical, casualty and strike
// language high, unrest and injury language medium, anything else low.
func DetermineSeverity(title, body string) Severity {
	text := strings.ToLower(title + " " + body)

	for _, rule := range severityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.severity
			}
		}
	}
	return SeverityLow
}
