package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/LootTally_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Typed event payloads for type safety

// LootObtainedPayloadV1 is the typed payload for loot obtained events
type LootObtainedPayloadV1 struct {
	Event     domain.LootEvent `json:"event"`
	Timestamp int64            `json:"timestamp"`
}

// RollsUpdatedPayloadV1 is the typed payload for roll session update events
type RollsUpdatedPayloadV1 struct {
	Reason       string `json:"reason"` // session_opened, roll_recorded, winner_recorded, cleared
	ItemID       uint32 `json:"item_id,omitempty"`
	ItemName     string `json:"item_name,omitempty"`
	OpenSessions int    `json:"open_sessions"`
	Timestamp    int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewLootObtainedEvent creates a new loot obtained event with type-safe payload
func NewLootObtainedEvent(loot domain.LootEvent) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeLootObtained,
		Payload: LootObtainedPayloadV1{
			Event:     loot,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewRollsUpdatedEvent creates a new rolls updated event
func NewRollsUpdatedEvent(reason string, itemID uint32, itemName string, openSessions int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeRollsUpdated,
		Payload: RollsUpdatedPayloadV1{
			Reason:       reason,
			ItemID:       itemID,
			ItemName:     itemName,
			OpenSessions: openSessions,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
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

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers execute synchronously; the facade publishes outside its own
	// locks so a slow consumer cannot stall ingestion under a mutex.
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

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
