// Package order provides domain entities and business logic for restaurant
// order management. It implements the Order aggregate root with lifecycle
// management, monetary totals, and an append-only audit timeline.
//
// The package includes:
//   - Order: The aggregate root that owns identity, items, totals, status, and timeline
//   - Status: The lifecycle state with a documented reference workflow
//   - Item: An immutable line item, optionally routed to a preparation station
//   - TimelineEntry: One record in the append-only audit trail
//   - Payment: A settled payment closing the order
//   - CreatedEvent, DispatchedEvent, StatusUpdatedEvent: Lifecycle events
//     published after the corresponding store write commits
//
// Key business rules:
//   - Orders belong to exactly one organization and contain at least one item
//   - Total always equals subtotal plus tax; tax is a flat 10% of the subtotal
//     and both are recomputed whenever items change
//   - Every lifecycle step appends exactly one timeline entry; entries are
//     never modified or removed
//   - Status updates are permissive: any valid status is accepted, and
//     out-of-flow changes are detectable via Status.CanTransitionTo
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
