package stream

import (
	"context"

	"github.com/osse101/CookieClicker_Go/internal/event"
	"github.com/osse101/CookieClicker_Go/internal/logger"
)

// Subscriber bridges the event bus to the hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a subscriber for hub on bus
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// trackedTypes are the game events forwarded to clients
var trackedTypes = []event.Type{
	event.ClickMilestone,
	event.ProducerPurchased,
	event.ClickUpgradePurchased,
	event.ProgressReset,
}

// Subscribe registers the bus handlers
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.StateChanged, s.handleStateChanged)
	for _, t := range trackedTypes {
		s.bus.Subscribe(t, s.handleTracked)
	}

	types := make([]string, 0, len(trackedTypes)+1)
	types = append(types, string(event.StateChanged))
	for _, t := range trackedTypes {
		types = append(types, string(t))
	}
	logger.Info(LogMsgSubscriberReady, "types", types)
}

func (s *Subscriber) handleStateChanged(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(TypeState, evt.Payload)
	return nil
}

func (s *Subscriber) handleTracked(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.TrackedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	s.hub.Broadcast(TypeTracked, payload)
	return nil
}
