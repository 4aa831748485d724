// Package station provides domain entities for the restaurant's preparation
// stations. It defines the station Type enum used to route order items, the
// kitchen/bar Family grouping that decides which operational view receives a
// ticket, and the organization-scoped Station registry entry.
package station
