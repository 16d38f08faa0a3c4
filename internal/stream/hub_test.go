package stream

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CookieClicker_Go/internal/domain"
	"github.com/osse101/CookieClicker_Go/internal/event"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.ClientCount() == n
	}, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case msg := <-c.Messages:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}
	}
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	hub := startHub(t)
	a := hub.Register(nil)
	b := hub.Register(nil)
	waitForClients(t, hub, 2)

	hub.Broadcast(TypeState, 42)

	assert.Equal(t, TypeState, receive(t, a).Type)
	assert.Equal(t, 42, receive(t, b).Payload)
}

func TestHub_Filter(t *testing.T) {
	hub := startHub(t)
	c := hub.Register([]string{TypeTracked})
	waitForClients(t, hub, 1)

	hub.Broadcast(TypeState, "skip")
	hub.Broadcast(TypeTracked, "keep")

	assert.Equal(t, "keep", receive(t, c).Payload)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)
	c := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Unregister(c.ID)
	waitForClients(t, hub, 0)

	_, ok := <-c.Messages
	assert.False(t, ok)
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := NewHub()
	hub.Start()
	c := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Stop()
	hub.Stop()

	_, ok := <-c.Messages
	assert.False(t, ok)
	assert.Nil(t, hub.Register(nil))
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	c := hub.Register(nil)
	waitForClients(t, hub, 1)

	state := domain.NewGameState(domain.DefaultCatalog())
	require.NoError(t, bus.Publish(context.Background(), event.NewStateChangedEvent("click", state)))
	msg := receive(t, c)
	assert.Equal(t, TypeState, msg.Type)
	assert.Equal(t, state, msg.Payload)

	evt := event.NewTrackedEvent(domain.EventClickMilestone, map[string]interface{}{domain.PropClicks: int64(100)}, "demo")
	require.NoError(t, bus.Publish(context.Background(), evt))
	msg = receive(t, c)
	assert.Equal(t, TypeTracked, msg.Type)
	payload, ok := msg.Payload.(event.TrackedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, domain.EventClickMilestone, payload.Name)
}

func TestHandler_StreamsMessages(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(Handler(hub, func() (interface{}, error) {
		return map[string]int{"currency": 7}, nil
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
		_ = resp.Body.Close()
	})

	read := func() Message {
		t.Helper()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	}

	assert.Equal(t, TypeConnected, read().Type)

	initial := read()
	assert.Equal(t, TypeState, initial.Type)
	assert.Equal(t, map[string]interface{}{"currency": float64(7)}, initial.Payload)

	waitForClients(t, hub, 1)
	hub.Broadcast(TypeTracked, "milestone")
	msg := read()
	assert.Equal(t, TypeTracked, msg.Type)
	assert.Equal(t, "milestone", msg.Payload)
}
