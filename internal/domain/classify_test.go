package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapToCategory(t *testing.T) {
	tests := []struct {
		name     string
		themes   []string
		title    string
		expected Category
	}{
		{"terror beats explosion", nil, "Suicide bombing kills dozens", CategoryTerrorism},
		{"protest", nil, "Mass demonstration in capital", CategoryProtest},
		{"weapons", nil, "Missile stockpile discovered", CategoryWeapons},
		{"explosion", nil, "Blast reported near market", CategoryExplosion},
		{"air raid", nil, "Airstrike hits residential block", CategoryAirRaid},
		{"drone", nil, "UAV intercepted over base", CategoryDrone},
		{"shelling", nil, "Artillery fire continues overnight", CategoryShelling},
		{"combat", nil, "Heavy fighting near the front", CategoryCombat},
		{"naval", nil, "Maritime incident in strait", CategoryNaval},
		{"humanitarian", nil, "Refugee crossings surge at border", CategoryHumanitarian},
		{"political", nil, "Election results disputed", CategoryPolitical},
		{"infrastructure", nil, "Power grid damaged in west", CategoryInfrastructure},
		{"movement", nil, "Convoy spotted moving east", CategoryMovement},
		{"themes contribute", []string{"Humanitarian Aid"}, "Situation report", CategoryHumanitarian},
		{"default combat", nil, "Quiet day in the region", CategoryCombat},
		{"case folded", nil, "DRONE STRIKE REPORTED", CategoryDrone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapToCategory(tt.themes, tt.title))
		})
	}
}

func TestDetermineSeverity(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		body     string
		expected Severity
	}{
		{"massacre is critical", "Massacre reported in village", "", SeverityCritical},
		{"nuclear is critical", "Nuclear facility targeted", "", SeverityCritical},
		{"killed is high", "Three killed in strike", "", SeverityHigh},
		{"explosion is high", "Explosion rocks city center", "", SeverityHigh},
		{"injured is medium", "Several injured in clashes", "", SeverityMedium},
		{"protest is medium", "Protest blocks main road", "", SeverityMedium},
		{"default low", "Talks continue between parties", "", SeverityLow},
		{"body text counts", "Update from the region", "dozens killed overnight", SeverityCritical},
		{"first match wins", "Protesters killed during demonstration", "", SeverityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineSeverity(tt.title, tt.body))
		})
	}
}

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
