package amqp

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YelzhanWeb/aquave/internal/adapter/logger"
	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

func TestEventHandler_HandleEvent(t *testing.T) {
	var out bytes.Buffer
	h := NewEventHandler(logger.NewNop(), &out)

	body := []byte(`{"type":"order_completed","session_id":"s-1","order_number":"AQV-123456",` +
		`"total":"90.97","timestamp":"2026-03-01T20:15:00Z"}`)
	require.NoError(t, h.HandleEvent(context.Background(), body))
	assert.Equal(t, "[20:15:00] session s-1: completed order AQV-123456 for $90.97\n", out.String())
}

func TestEventHandler_RejectsGarbage(t *testing.T) {
	var out bytes.Buffer
	h := NewEventHandler(logger.NewNop(), &out)

	assert.Error(t, h.HandleEvent(context.Background(), []byte("{")))
	assert.Error(t, h.HandleEvent(context.Background(), []byte(`{"session_id":"s-1"}`)))
	assert.Empty(t, out.String())
}

func TestDescribe(t *testing.T) {
	on, off, level := true, false, 85

	cases := []struct {
		ev   interfaces.StorefrontEvent
		want string
	}{
		{interfaces.StorefrontEvent{Type: interfaces.EventMoodSelected, MoodID: "mood-2"}, "picked mood mood-2"},
		{interfaces.StorefrontEvent{Type: interfaces.EventFavoriteToggled, DrinkID: "drink-1", Favorite: &on}, "set favorite on drink-1 to true"},
		{interfaces.StorefrontEvent{Type: interfaces.EventLightingChanged, Value: &level}, "set lighting to 85%"},
		{interfaces.StorefrontEvent{Type: interfaces.EventMusicToggled, Enabled: &off}, "turned music off"},
		{interfaces.StorefrontEvent{Type: interfaces.EventSmartLightingToggled}, "turned smart lighting off"},
		{interfaces.StorefrontEvent{Type: interfaces.EventGenreChanged, Genre: "Jazz"}, "switched genre to Jazz"},
		{interfaces.StorefrontEvent{Type: "custom"}, "custom"},
	}
	for _, tc := range cases {
		t.Run(string(tc.ev.Type), func(t *testing.T) {
			assert.Equal(t, tc.want, Describe(tc.ev))
		})
	}
}
