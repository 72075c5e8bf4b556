package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

func TestEventPublisher(t *testing.T) {
	var buf bytes.Buffer
	pub := NewEventPublisher(newZap("storefront", zapcore.InfoLevel, zapcore.AddSync(&buf)))

	volume := 40
	ctx := WithRequestID(context.Background(), "req-9")
	require.NoError(t, pub.PublishEvent(ctx, interfaces.StorefrontEvent{
		Type:      interfaces.EventMusicVolumeChanged,
		SessionID: "s-1",
		Value:     &volume,
	}))
	require.NoError(t, pub.Close())

	entry := decode(t, &buf)
	assert.Equal(t, "storefront_event", entry["action"])
	assert.Equal(t, "req-9", entry["request_id"])
	assert.Equal(t, map[string]interface{}{
		"type":       "music_volume_changed",
		"session_id": "s-1",
		"value":      float64(40),
	}, entry["details"])
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))
	assert.Equal(t, "abc", RequestID(WithRequestID(context.Background(), "abc")))
}
