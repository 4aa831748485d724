// Package services contains stateless domain services that operate across
// aggregates. TicketRouter partitions a dispatched order's items into
// per-station tickets for the kitchen and bar displays.
package services
