package metrics

import (
	"context"

	"github.com/osse101/CookieClicker_Go/internal/domain"
	"github.com/osse101/CookieClicker_Go/internal/event"
	"github.com/osse101/CookieClicker_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to the game events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.ClickMilestone,
		event.ProducerPurchased,
		event.ClickUpgradePurchased,
		event.ProgressReset,
		event.GameLoaded,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.TrackedPayloadV1](evt.Payload)
	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		return err
	}

	RecordTracked(payload.Name, payload.Properties)
	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordTracked updates the counters for one tracked game event
func RecordTracked(name string, props map[string]interface{}) {
	EventsTracked.WithLabelValues(name).Inc()

	switch name {
	case domain.EventProducerPurchased:
		if id, ok := props[domain.PropProducerID].(string); ok {
			ProducersBought.WithLabelValues(id).Inc()
		}
	case domain.EventClickUpgradePurchased:
		ClickUpgrades.Inc()
	}
}

// ObserveState records the state gauges
func ObserveState(state domain.GameState) {
	Currency.Set(state.Currency)
	ProductionRate.Set(state.ProductionRate())
}
