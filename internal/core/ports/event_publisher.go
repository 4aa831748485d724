package ports

import (
	"context"

	"restaurant/internal/pkg/eventbus"
)

// EventPublisher delivers lifecycle events to in-process subscribers.
// Delivery is strictly best-effort: publishing never fails the calling
// operation, and subscriber errors stay with the bus. Command handlers
// publish only after the store write has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...eventbus.Event)
}
