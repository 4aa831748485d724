package order

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/station"
	"restaurant/internal/pkg/errs"
)

// Event type identifiers for order lifecycle events.
const (
	EventOrderCreated       = "order.created"
	EventOrderDispatched    = "order.dispatched"
	EventOrderStatusUpdated = "order.status_updated"
)

// DispatchTarget names one item singled out by a dispatch request. Targets
// are informational: routing is driven by the items' own station types.
type DispatchTarget struct {
	Item    string
	Station station.Type
}

// Validate checks that the target names an item and a valid station type.
func (t DispatchTarget) Validate() error {
	if t.Item == "" {
		return errs.NewValueIsRequiredError("item")
	}
	return t.Station.Validate()
}

// CreatedEvent is emitted after a new order has been persisted.
type CreatedEvent struct {
	OrderID  kernel.UUID
	OrgID    kernel.UUID
	BranchID kernel.UUID
	Number   string
	Table    string
	Status   Status
	Items    []Item
	Total    float64
}

// EventType identifies the event on the bus.
func (CreatedEvent) EventType() string {
	return EventOrderCreated
}

// DispatchedEvent is emitted after an order has been dispatched to its
// preparation stations.
type DispatchedEvent struct {
	OrderID  kernel.UUID
	OrgID    kernel.UUID
	BranchID kernel.UUID
	Number   string
	Table    string
	Items    []Item
	Targets  []DispatchTarget
}

// EventType identifies the event on the bus.
func (DispatchedEvent) EventType() string {
	return EventOrderDispatched
}

// StatusUpdatedEvent is emitted after an order's status has changed.
type StatusUpdatedEvent struct {
	OrderID  kernel.UUID
	OrgID    kernel.UUID
	BranchID kernel.UUID
	Number   string
	Status   Status
	Items    []Item
}

// EventType identifies the event on the bus.
func (StatusUpdatedEvent) EventType() string {
	return EventOrderStatusUpdated
}
