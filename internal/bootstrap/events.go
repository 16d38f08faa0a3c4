package bootstrap

import (
	"log/slog"

	"github.com/osse101/CookieClicker_Go/internal/event"
	"github.com/osse101/CookieClicker_Go/internal/metrics"
	"github.com/osse101/CookieClicker_Go/internal/stream"
	"github.com/osse101/CookieClicker_Go/internal/tracker"
)

// EventSystem groups the bus and everything that hangs off it
type EventSystem struct {
	Bus        event.Bus
	BusTracker *tracker.Bus
	Tracker    tracker.Tracker
	Hub        *stream.Hub
}

// InitializeEventSystem creates the event bus, registers the metrics collector
// and starts the stream hub fed from the bus.
// Tracked events are logged synchronously and published to the bus through
// the bounded worker pool of the bus tracker.
func InitializeEventSystem(player string) *EventSystem {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Debug(LogMsgMetricsCollectorRegistered)

	busTracker := tracker.NewBus(bus, player, tracker.DefaultBusWorkers, tracker.DefaultBusQueueSize)

	hub := stream.NewHub()
	hub.Start()
	stream.NewSubscriber(hub, bus).Subscribe()

	slog.Info(LogMsgEventSystemInitialized,
		"bus_workers", tracker.DefaultBusWorkers,
		"bus_queue", tracker.DefaultBusQueueSize)

	return &EventSystem{
		Bus:        bus,
		BusTracker: busTracker,
		Tracker:    tracker.Multi{tracker.NewLog(slog.Default()), busTracker},
		Hub:        hub,
	}
}
