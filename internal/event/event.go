package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CookieClicker_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	ID       string      `json:"id"`
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Game event types. They mirror the names handed to the tracker.
const (
	ClickMilestone        Type = domain.EventClickMilestone
	ProducerPurchased     Type = domain.EventProducerPurchased
	ClickUpgradePurchased Type = domain.EventClickUpgradePurchased
	ProgressReset         Type = domain.EventProgressReset
	GameLoaded            Type = domain.EventGameLoaded

	// StateChanged carries a full state snapshot for stream subscribers
	StateChanged Type = "state.changed"
)

// TrackedPayloadV1 is the typed payload for analytics events
type TrackedPayloadV1 struct {
	Name       string                 `json:"name"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Timestamp  int64                  `json:"timestamp"`
}

// NewTrackedEvent creates an event for a tracked analytics call
func NewTrackedEvent(name string, props map[string]interface{}, player string) Event {
	return Event{
		ID:      uuid.NewString(),
		Version: EventSchemaVersion,
		Type:    Type(name),
		Payload: TrackedPayloadV1{
			Name:       name,
			Properties: props,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: Metadata{
			MetadataPlayer: player,
		},
	}
}

// NewStateChangedEvent creates an event carrying a state snapshot
func NewStateChangedEvent(change string, state interface{}) Event {
	return Event{
		ID:      uuid.NewString(),
		Version: EventSchemaVersion,
		Type:    StateChanged,
		Payload: state,
		Metadata: Metadata{
			MetadataChange: change,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers of its type, then to the
// wildcard subscribers. Handlers run synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	handlers = append(handlers, b.handlers[Any]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type. Subscribing to Any
// receives every event.
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
