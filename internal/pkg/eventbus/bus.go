package eventbus

import (
	"context"
	"log/slog"
	"sync"
)

// Event is a typed message carried by the bus. Implementations are plain
// structs with a fixed field set per type, so subscribers can switch on the
// concrete type instead of probing optional fields.
type Event interface {
	EventType() string
}

// Handler consumes events. A handler error is logged by the bus and never
// propagated to the publisher: the store write is the source of truth and
// event delivery is strictly best-effort.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, event Event) error

// Handle calls f(ctx, event).
func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus is an in-process publish/subscribe channel for lifecycle events.
// It is constructed explicitly and handed to producers and consumers at
// startup; there is no package-level instance. Delivery is synchronous:
// Publish returns after every subscriber for the event's type has run,
// so an observer of event N has seen store state at least as new as the
// state at emission time.
//
// Example:
//
//	bus := eventbus.NewBus(logger)
//	bus.Subscribe(gateway, order.EventOrderCreated, order.EventOrderDispatched)
//	bus.Publish(ctx, order.CreatedEvent{...})
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *slog.Logger
}

// NewBus creates an empty bus. The logger is used for handler failures only;
// successful deliveries are not logged.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger.With("component", "event_bus"),
	}
}

// Subscribe registers a handler for the given event types. Handlers for one
// type run in registration order. Subscribe is safe to call concurrently
// with Publish.
func (b *Bus) Subscribe(handler Handler, eventTypes ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, eventType := range eventTypes {
		b.handlers[eventType] = append(b.handlers[eventType], handler)
	}
}

// Publish delivers each event to every handler subscribed to its type.
// Handler errors and panics are logged and swallowed; a publish never fails
// and never rolls back the mutation that produced the event.
func (b *Bus) Publish(ctx context.Context, events ...Event) {
	for _, event := range events {
		b.mu.RLock()
		handlers := make([]Handler, len(b.handlers[event.EventType()]))
		copy(handlers, b.handlers[event.EventType()])
		b.mu.RUnlock()

		for _, handler := range handlers {
			b.dispatch(ctx, handler, event)
		}
	}
}

// dispatch runs one handler, converting panics into log entries so a broken
// subscriber cannot take down the publisher.
func (b *Bus) dispatch(ctx context.Context, handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.ErrorContext(ctx, "Event handler panicked",
				"event_type", event.EventType(), "panic", r)
		}
	}()

	if err := handler.Handle(ctx, event); err != nil {
		b.logger.ErrorContext(ctx, "Event handler failed",
			"event_type", event.EventType(), "error", err)
	}
}
