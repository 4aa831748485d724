// Package eventbus provides an explicitly constructed in-process
// publish/subscribe channel for order lifecycle events.
//
// The bus decouples the order mutation path from real-time delivery: the
// lifecycle command handlers publish typed events after their store write
// commits, and any number of subscribers (the websocket gateway, tests)
// consume them without the producer knowing who listens.
//
// Delivery guarantees:
//   - Synchronous, in registration order, per event type
//   - Events from one mutation are observed after the committed store state
//   - No replay, no acknowledgement, no cross-order ordering
//   - Handler errors and panics never reach the publisher
//
// The bus is always passed as a dependency, never reached through a
// package-level singleton, so tests can construct one per test case and get
// deterministic delivery.
package eventbus
