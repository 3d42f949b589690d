package domain

import (
	"errors"
	"time"
)

// Category classifies an event into the fixed conflict taxonomy.
type Category string

const (
	CategoryShelling       Category = "shelling"
	CategoryAirRaid        Category = "air_raid"
	CategoryCombat         Category = "combat"
	CategoryDrone          Category = "drone"
	CategoryNaval          Category = "naval"
	CategoryPolitical      Category = "political"
	CategoryHumanitarian   Category = "humanitarian"
	CategoryInfrastructure Category = "infrastructure"
	CategoryTerrorism      Category = "terrorism"
	CategoryProtest        Category = "protest"
	CategoryWeapons        Category = "weapons"
	CategoryExplosion      Category = "explosion"
	CategoryMovement       Category = "movement"
)

// Categories lists every valid taxonomy value.
var Categories = []Category{
	CategoryShelling, CategoryAirRaid, CategoryCombat, CategoryDrone,
	CategoryNaval, CategoryPolitical, CategoryHumanitarian,
	CategoryInfrastructure, CategoryTerrorism, CategoryProtest,
	CategoryWeapons, CategoryExplosion, CategoryMovement,
}

// Valid reports whether c is part of the taxonomy.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Severity is a totally ordered four-level scale.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank maps a severity to its position on the scale, 0 (low) through 3
// (critical). Unknown values rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}

// Valid reports whether s is one of the four levels.
func (s Severity) Valid() bool { return s.Rank() >= 0 }

// Coordinates is a WGS-84 longitude/latitude pair in decimal degrees.
type Coordinates struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

const (
	// MaxTitleLen and MaxDescriptionLen bound the human-readable fields.
	MaxTitleLen       = 100
	MaxDescriptionLen = 300
)

// Event is the canonical record every connector must produce and the only
// shape that flows through geocoding, deduplication, and aggregation. Events
// are treated as immutable values; the deduplication engine builds merged
// copies rather than mutating members of a cluster.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	Category    Category    `json:"category"`
	Severity    Severity    `json:"severity"`
	Coordinates Coordinates `json:"coordinates"`
	EventDate   time.Time   `json:"eventDate"`
	SourceURL   string      `json:"sourceUrl,omitempty"`
	Verified    bool        `json:"verified"`
	MediaURLs   []string    `json:"mediaUrls"`
	Tags        []string    `json:"tags"`
}

// NewEvent builds an Event with generated ID and defaults applied: the title
// and description are truncated, the event date falls back to ingestion time,
// and the list fields are never nil.
func NewEvent(title string, coords Coordinates, category Category, severity Severity) Event {
	return Event{
		ID:          GenerateID(),
		Title:       TruncateTitle(title),
		Category:    category,
		Severity:    severity,
		Coordinates: coords,
		EventDate:   clock.Now().UTC(),
		MediaURLs:   []string{},
		Tags:        []string{},
	}
}

// Validate checks the invariants every event must satisfy before leaving the
// pipeline.
func (e Event) Validate() error {
	if e.ID == "" {
		return errors.New("event missing id")
	}
	if e.Title == "" {
		return errors.New("event missing title")
	}
	if !e.Category.Valid() {
		return errors.New("event category outside taxonomy: " + string(e.Category))
	}
	if !e.Severity.Valid() {
		return errors.New("event severity invalid: " + string(e.Severity))
	}
	return nil
}

// DescriptionLen returns the description length, 0 when absent.
func (e Event) DescriptionLen() int {
	if e.Description == nil {
		return 0
	}
	return len(*e.Description)
}

// TruncateTitle bounds a headline at MaxTitleLen characters. Truncation
// counts runes so multibyte text is never split mid-character.
func TruncateTitle(s string) string {
	return truncateRunes(s, MaxTitleLen)
}

// TruncateDescription bounds free text at MaxDescriptionLen characters and
// returns nil for empty input so absent descriptions serialize as null.
func TruncateDescription(s string) *string {
	if s == "" {
		return nil
	}
	s = truncateRunes(s, MaxDescriptionLen)
	return &s
}

func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
