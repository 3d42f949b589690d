package domain

// Intensity grades a conflict zone for map shading. It reuses the severity
// vocabulary but applies to areas, not events.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityMedium   Intensity = "medium"
	IntensityHigh     Intensity = "high"
	IntensityCritical Intensity = "critical"
)

// ConflictZone is static metadata describing an area with an ongoing
// conflict. Zones are independent of the live pipeline; boundaries are coarse
// polygons, each ring a list of lon/lat pairs.
type ConflictZone struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Intensity   Intensity       `json:"intensity"`
	Boundary    [][]Coordinates `json:"boundary"`
	Description string          `json:"description"`
}

// ConflictZones returns the curated zone table.
func ConflictZones() []ConflictZone {
	ring := func(pts ...Coordinates) [][]Coordinates { return [][]Coordinates{pts} }
	return []ConflictZone{
		{
			ID: "ukraine", Name: "Ukraine", Intensity: IntensityCritical,
			Boundary:    ring(Coordinates{22.15, 48.40}, Coordinates{40.08, 49.31}, Coordinates{35.02, 45.65}, Coordinates{22.15, 48.40}),
			Description: "Active combat zone in the Russia-Ukraine war",
		},
		{
			ID: "gaza", Name: "Gaza Strip", Intensity: IntensityCritical,
			Boundary:    ring(Coordinates{34.22, 31.22}, Coordinates{34.48, 31.60}, Coordinates{34.22, 31.22}),
			Description: "Israel-Gaza conflict",
		},
		{
			ID: "syria", Name: "Syria", Intensity: IntensityHigh,
			Boundary:    ring(Coordinates{35.63, 33.09}, Coordinates{42.36, 37.11}, Coordinates{35.63, 33.09}),
			Description: "Syrian civil war",
		},
		{
			ID: "yemen", Name: "Yemen", Intensity: IntensityHigh,
			Boundary:    ring(Coordinates{43.22, 13.22}, Coordinates{52.00, 19.00}, Coordinates{43.22, 13.22}),
			Description: "Yemen conflict",
		},
		{
			ID: "sudan", Name: "Sudan", Intensity: IntensityHigh,
			Boundary:    ring(Coordinates{21.8, 8.7}, Coordinates{38.6, 22.2}, Coordinates{21.8, 8.7}),
			Description: "Sudan armed forces and RSF conflict",
		},
		{
			ID: "myanmar", Name: "Myanmar", Intensity: IntensityMedium,
			Boundary:    ring(Coordinates{92.19, 20.87}, Coordinates{100.12, 20.35}, Coordinates{92.19, 20.87}),
			Description: "Myanmar civil war",
		},
		{
			ID: "ethiopia-tigray", Name: "Tigray", Intensity: IntensityMedium,
			Boundary:    ring(Coordinates{36.44, 12.46}, Coordinates{40.77, 13.46}, Coordinates{36.44, 12.46}),
			Description: "Tigray conflict",
		},
		{
			ID: "sahel", Name: "Sahel conflict belt", Intensity: IntensityMedium,
			Boundary:    ring(Coordinates{-0.03, 14.99}, Coordinates{15.10, 21.31}, Coordinates{-0.03, 14.99}),
			Description: "Islamist insurgency across the Sahel",
		},
		{
			ID: "drc-east", Name: "DR Congo (East)", Intensity: IntensityHigh,
			Boundary:    ring(Coordinates{27.37, -5.00}, Coordinates{30.86, 2.41}, Coordinates{27.37, -5.00}),
			Description: "Conflict in the eastern DR Congo",
		},
		{
			ID: "haiti", Name: "Haiti", Intensity: IntensityMedium,
			Boundary:    ring(Coordinates{-74.46, 18.35}, Coordinates{-71.66, 18.32}, Coordinates{-74.46, 18.35}),
			Description: "Gang conflict and instability",
		},
		{
			ID: "lebanon", Name: "Lebanon", Intensity: IntensityHigh,
			Boundary:    ring(Coordinates{35.10, 33.09}, Coordinates{36.42, 34.59}, Coordinates{35.10, 33.09}),
			Description: "Hezbollah-Israel tensions",
		},
		{
			ID: "israel-westbank", Name: "Israel / West Bank", Intensity: IntensityHigh,
			Boundary:    ring(Coordinates{34.27, 31.22}, Coordinates{35.63, 33.09}, Coordinates{34.27, 31.22}),
			Description: "Israeli-Palestinian conflict",
		},
		{
			ID: "iraq", Name: "Iraq", Intensity: IntensityMedium,
			Boundary:    ring(Coordinates{38.79, 33.38}, Coordinates{48.01, 30.99}, Coordinates{38.79, 33.38}),
			Description: "Ongoing instability and militia activity",
		},
		{
			ID: "iran", Name: "Iran", Intensity: IntensityLow,
			Boundary:    ring(Coordinates{44.11, 39.43}, Coordinates{63.32, 26.76}, Coordinates{44.11, 39.43}),
			Description: "Regional tensions and sanctions",
		},
		{
			ID: "kashmir", Name: "Kashmir", Intensity: IntensityMedium,
			Boundary:    ring(Coordinates{73.91, 32.49}, Coordinates{79.21, 32.50}, Coordinates{73.91, 32.49}),
			Description: "India-Pakistan border conflict",
		},
	}
}
