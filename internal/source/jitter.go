package source

import (
	"hash/fnv"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

// jitterCoordinates offsets a coordinate pair by up to ±spread/2 degrees on
// each axis so events mapped to the same reference point do not stack. The
// offset is derived from the seed, so the same report always lands in the
// same spot.
func jitterCoordinates(c domain.Coordinates, seed string, spread float64) domain.Coordinates {
	h := fnv.New64a()
	h.Write([]byte(seed))
	sum := h.Sum64()

	lonFrac := float64(sum&0xFFFFFFFF) / float64(uint64(1)<<32)
	latFrac := float64(sum>>32) / float64(uint64(1)<<32)
	return domain.Coordinates{
		Lon: c.Lon + (lonFrac-0.5)*spread,
		Lat: c.Lat + (latFrac-0.5)*spread,
	}
}
