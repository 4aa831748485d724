package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every read and write is scoped to an organization: a lookup with the
// wrong organization behaves exactly like a lookup for a missing order,
// so callers cannot distinguish "other tenant" from "does not exist".
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// A duplicate order number within the organization is a conflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier within an organization.
	// Returns errs.ObjectNotFoundError when no such order exists in
	// that organization.
	Get(ctx context.Context, orgID, id kernel.UUID) (*order.Order, error)

	// Delete permanently removes an order within an organization.
	// Used for recall (error correction), not as a status transition.
	Delete(ctx context.Context, orgID, id kernel.UUID) error

	// NextNumber atomically reserves the next order sequence number for
	// an organization. Concurrent callers always receive distinct values.
	NextNumber(ctx context.Context, orgID kernel.UUID) (int64, error)

	// PurgeStale removes cancelled, unpaid orders last touched before the
	// cutoff, across all organizations. Orders with a recorded payment are
	// never removed. Returns the number of removed orders.
	PurgeStale(ctx context.Context, before time.Time) (int64, error)
}
