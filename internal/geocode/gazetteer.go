package geocode

import (
	"strings"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// knownPlace pairs a lowercase place name with its coordinates. Entries are
// ordered so that text scans resolve deterministically when a text mentions
// more than one place.
type knownPlace struct {
	name   string
	coords domain.Coordinates
}

// knownPlaces holds curated coordinates for recurring crisis locations. These
// resolve instantly and never hit the geocoding provider.
var knownPlaces = []knownPlace{
	// Ukraine
	{"kyiv", domain.Coordinates{Lon: 30.5234, Lat: 50.4501}},
	{"kiev", domain.Coordinates{Lon: 30.5234, Lat: 50.4501}},
	{"kharkiv", domain.Coordinates{Lon: 36.2304, Lat: 49.9935}},
	{"odesa", domain.Coordinates{Lon: 30.7233, Lat: 46.4825}},
	{"odessa", domain.Coordinates{Lon: 30.7233, Lat: 46.4825}},
	{"dnipro", domain.Coordinates{Lon: 35.0462, Lat: 48.4647}},
	{"zaporizhzhia", domain.Coordinates{Lon: 35.1396, Lat: 47.8388}},
	{"mariupol", domain.Coordinates{Lon: 37.5494, Lat: 47.0951}},
	{"donetsk", domain.Coordinates{Lon: 37.8028, Lat: 48.0159}},
	{"luhansk", domain.Coordinates{Lon: 39.3078, Lat: 48.5740}},
	{"kherson", domain.Coordinates{Lon: 32.6178, Lat: 46.6354}},
	{"bakhmut", domain.Coordinates{Lon: 38.0000, Lat: 48.5953}},
	{"avdiivka", domain.Coordinates{Lon: 37.7503, Lat: 48.1394}},
	{"kursk", domain.Coordinates{Lon: 36.1874, Lat: 51.7373}},
	{"belgorod", domain.Coordinates{Lon: 36.5873, Lat: 50.5997}},

	// Gaza and Israel
	{"gaza", domain.Coordinates{Lon: 34.4668, Lat: 31.5017}},
	{"gaza city", domain.Coordinates{Lon: 34.4668, Lat: 31.5017}},
	{"rafah", domain.Coordinates{Lon: 34.2355, Lat: 31.2969}},
	{"khan younis", domain.Coordinates{Lon: 34.3029, Lat: 31.3462}},
	{"tel aviv", domain.Coordinates{Lon: 34.7818, Lat: 32.0853}},
	{"jerusalem", domain.Coordinates{Lon: 35.2137, Lat: 31.7683}},
	{"haifa", domain.Coordinates{Lon: 34.9896, Lat: 32.7940}},
	{"ashkelon", domain.Coordinates{Lon: 34.5715, Lat: 31.6688}},

	// Lebanon
	{"beirut", domain.Coordinates{Lon: 35.5018, Lat: 33.8938}},
	{"tyre", domain.Coordinates{Lon: 35.1956, Lat: 33.2705}},
	{"sidon", domain.Coordinates{Lon: 35.3731, Lat: 33.5633}},
	{"nabatieh", domain.Coordinates{Lon: 35.4833, Lat: 33.3833}},

	// Syria
	{"damascus", domain.Coordinates{Lon: 36.2765, Lat: 33.5138}},
	{"aleppo", domain.Coordinates{Lon: 37.1611, Lat: 36.2028}},
	{"idlib", domain.Coordinates{Lon: 36.6317, Lat: 35.9306}},
	{"homs", domain.Coordinates{Lon: 36.7128, Lat: 34.7324}},
	{"latakia", domain.Coordinates{Lon: 35.7919, Lat: 35.5317}},

	// Iran
	{"tehran", domain.Coordinates{Lon: 51.3890, Lat: 35.6892}},
	{"isfahan", domain.Coordinates{Lon: 51.6688, Lat: 32.6546}},
	{"shiraz", domain.Coordinates{Lon: 52.5836, Lat: 29.5918}},
	{"tabriz", domain.Coordinates{Lon: 46.2919, Lat: 38.0800}},

	// Yemen
	{"sanaa", domain.Coordinates{Lon: 44.2067, Lat: 15.3694}},
	{"aden", domain.Coordinates{Lon: 45.0187, Lat: 12.7855}},
	{"hodeidah", domain.Coordinates{Lon: 42.9511, Lat: 14.7979}},
	{"marib", domain.Coordinates{Lon: 45.3250, Lat: 15.4617}},

	// Sudan
	{"khartoum", domain.Coordinates{Lon: 32.5599, Lat: 15.5007}},
	{"omdurman", domain.Coordinates{Lon: 32.4821, Lat: 15.6445}},
	{"port sudan", domain.Coordinates{Lon: 37.2164, Lat: 19.6158}},
	{"darfur", domain.Coordinates{Lon: 24.9042, Lat: 13.4500}},
	{"el fasher", domain.Coordinates{Lon: 25.3494, Lat: 13.6286}},

	// Red Sea shipping lanes
	{"bab el mandeb", domain.Coordinates{Lon: 43.3333, Lat: 12.5833}},
	{"red sea", domain.Coordinates{Lon: 38.0000, Lat: 20.0000}},

	// Africa
	{"mogadishu", domain.Coordinates{Lon: 45.3182, Lat: 2.0469}},
	{"addis ababa", domain.Coordinates{Lon: 38.7578, Lat: 9.0054}},
	{"nairobi", domain.Coordinates{Lon: 36.8219, Lat: -1.2921}},
	{"kinshasa", domain.Coordinates{Lon: 15.2663, Lat: -4.4419}},
	{"goma", domain.Coordinates{Lon: 29.2285, Lat: -1.6771}},
	{"bamako", domain.Coordinates{Lon: -8.0029, Lat: 12.6392}},
	{"ouagadougou", domain.Coordinates{Lon: -1.5197, Lat: 12.3714}},
	{"niamey", domain.Coordinates{Lon: 2.1098, Lat: 13.5137}},

	// Asia
	{"kabul", domain.Coordinates{Lon: 69.1723, Lat: 34.5553}},
	{"islamabad", domain.Coordinates{Lon: 73.0479, Lat: 33.6844}},
	{"new delhi", domain.Coordinates{Lon: 77.2090, Lat: 28.6139}},
	{"kashmir", domain.Coordinates{Lon: 76.0700, Lat: 33.7800}},
	{"taipei", domain.Coordinates{Lon: 121.5654, Lat: 25.0330}},
	{"beijing", domain.Coordinates{Lon: 116.4074, Lat: 39.9042}},
	{"pyongyang", domain.Coordinates{Lon: 125.7625, Lat: 39.0392}},
	{"seoul", domain.Coordinates{Lon: 126.9780, Lat: 37.5665}},
	{"tokyo", domain.Coordinates{Lon: 139.6917, Lat: 35.6895}},
	{"yangon", domain.Coordinates{Lon: 96.1951, Lat: 16.8661}},
	{"naypyidaw", domain.Coordinates{Lon: 96.1297, Lat: 19.7633}},

	// Caucasus
	{"tbilisi", domain.Coordinates{Lon: 44.7833, Lat: 41.7151}},
	{"yerevan", domain.Coordinates{Lon: 44.5126, Lat: 40.1792}},
	{"baku", domain.Coordinates{Lon: 49.8671, Lat: 40.4093}},
	{"stepanakert", domain.Coordinates{Lon: 46.7657, Lat: 39.8265}},

	// Europe
	{"moscow", domain.Coordinates{Lon: 37.6173, Lat: 55.7558}},
	{"berlin", domain.Coordinates{Lon: 13.4050, Lat: 52.5200}},
	{"paris", domain.Coordinates{Lon: 2.3522, Lat: 48.8566}},
	{"london", domain.Coordinates{Lon: -0.1276, Lat: 51.5074}},
	{"brussels", domain.Coordinates{Lon: 4.3517, Lat: 50.8503}},
	{"warsaw", domain.Coordinates{Lon: 21.0122, Lat: 52.2297}},
	{"bucharest", domain.Coordinates{Lon: 26.1025, Lat: 44.4268}},

	// Americas
	{"washington", domain.Coordinates{Lon: -77.0369, Lat: 38.9072}},
	{"new york", domain.Coordinates{Lon: -74.0060, Lat: 40.7128}},
	{"mexico city", domain.Coordinates{Lon: -99.1332, Lat: 19.4326}},
	{"caracas", domain.Coordinates{Lon: -66.9036, Lat: 10.4806}},
	{"bogota", domain.Coordinates{Lon: -74.0721, Lat: 4.7110}},
	{"port au prince", domain.Coordinates{Lon: -72.3388, Lat: 18.5944}},
}

// KnownLocation looks up coordinates for a place name. Exact matches win; a
// partial match in either direction (query contains key or key contains
// query) is accepted as a fallback.
func KnownLocation(name string) (domain.Coordinates, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return domain.Coordinates{}, false
	}

	for _, p := range knownPlaces {
		if p.name == normalized {
			return p.coords, true
		}
	}
	for _, p := range knownPlaces {
		if strings.Contains(normalized, p.name) || strings.Contains(p.name, normalized) {
			return p.coords, true
		}
	}
	return domain.Coordinates{}, false
}

// ScanKnown searches free text for any curated place name and returns the
// first hit in gazetteer order.
func ScanKnown(text string) (domain.Coordinates, string, bool) {
	lower := strings.ToLower(text)
	for _, p := range knownPlaces {
		if strings.Contains(lower, p.name) {
			return p.coords, p.name, true
		}
	}
	return domain.Coordinates{}, "", false
}

// KnownLocationCount reports the gazetteer size.
func KnownLocationCount() int {
	return len(knownPlaces)
}
