package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_Wildcard(t *testing.T) {
	bus := NewMemoryBus()
	var seen []Type

	bus.Subscribe(Any, func(ctx context.Context, event Event) error {
		seen = append(seen, event.Type)
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), Event{Type: ClickMilestone}))
	require.NoError(t, bus.Publish(context.Background(), Event{Type: ProgressReset}))
	assert.Equal(t, []Type{ClickMilestone, ProgressReset}, seen)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	assert.Error(t, err)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: GameLoaded}))
}

func TestNewTrackedEvent(t *testing.T) {
	evt := NewTrackedEvent("producer_purchased", map[string]interface{}{"owned": int64(1)}, "demo")

	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, ProducerPurchased, evt.Type)
	assert.Equal(t, "demo", evt.GetMetadataValue(MetadataPlayer))
	assert.Nil(t, evt.GetMetadataValue("missing"))

	payload, err := DecodePayload[TrackedPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "producer_purchased", payload.Name)
	assert.Equal(t, int64(1), payload.Properties["owned"])
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"name": "click_milestone", "timestamp": 42}

	payload, err := DecodePayload[TrackedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "click_milestone", payload.Name)
	assert.Equal(t, int64(42), payload.Timestamp)
}
