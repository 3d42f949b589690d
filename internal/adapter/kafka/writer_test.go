package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalobserver/crisis-events-service/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	event := domain.NewEvent("Shelling reported on the eastern front",
		domain.Coordinates{Lon: 37.8, Lat: 48.0}, domain.CategoryShelling, domain.SeverityHigh)
	event.EventDate = time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	event.Tags = []string{"usgs"}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte(event.ID), msg.Key)

	var decoded domain.Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, event.Title, decoded.Title)
	assert.Equal(t, event.Category, decoded.Category)
	assert.Equal(t, event.Coordinates, decoded.Coordinates)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "shelling", headers["category"])
	assert.Equal(t, "high", headers["severity"])
	assert.Equal(t, "2026-02-10T08:00:00Z", headers["event_date"])
}
