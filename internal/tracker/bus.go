package tracker

import (
	"context"

	"github.com/osse101/CookieClicker_Go/internal/event"
	"github.com/osse101/CookieClicker_Go/internal/logger"
	"github.com/osse101/CookieClicker_Go/internal/metrics"
	"github.com/osse101/CookieClicker_Go/internal/worker"
)

// Bus publishes tracked events onto an event bus from a worker pool.
// When the pool queue is full the event is dropped and counted.
type Bus struct {
	bus    event.Bus
	pool   *worker.Pool
	player string
}

// NewBus creates and starts a bus tracker
func NewBus(bus event.Bus, player string, workers, queueSize int) *Bus {
	pool := worker.NewPool(workers, queueSize)
	pool.Start()
	return &Bus{bus: bus, pool: pool, player: player}
}

// Track queues the event for publication without blocking
func (t *Bus) Track(name string, props map[string]any) {
	evt := event.NewTrackedEvent(name, copyProps(props), t.player)

	job := worker.JobFunc(func(ctx context.Context) error {
		if err := t.bus.Publish(ctx, evt); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(name).Inc()
			return err
		}
		return nil
	})

	if !t.pool.TryEnqueue(job) {
		metrics.EventsDropped.WithLabelValues(name).Inc()
		logger.Warn(LogMsgEventDropped, AttrKeyEvent, name)
	}
}

// Close publishes what is already queued and stops the workers
func (t *Bus) Close() {
	t.pool.Stop()
}

func copyProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
