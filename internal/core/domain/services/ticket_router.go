package services

import (
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/station"
)

// Ticket is a per-station work order derived from a dispatched order.
// It carries only the items the receiving station must prepare.
type Ticket struct {
	// Station is the operational family the ticket is addressed to.
	Station station.Family

	// OrderID identifies the order the ticket was derived from.
	OrderID string

	// Number is the order's human-readable number, shown on the station display.
	Number string

	// Table is the table label, shown on the station display.
	Table string

	// Items are the lines the station must prepare.
	Items []order.Item
}

// TicketRouter is a domain service that partitions a dispatched order's
// items into per-station tickets.
//
// Routing rules:
//   - kitchen and dessert items land on the kitchen ticket
//   - bar and beverage items land on the bar ticket
//   - items with no station type, or an unrecognized one, appear on no ticket
//
// A station with no matching items receives no ticket. The router is pure
// and stateless: tickets can be re-derived at any time from the same event
// payload and always come out identical, kitchen first, then bar.
//
// Example usage:
//
//	router := NewTicketRouter()
//	tickets := router.Route(event.OrderID.String(), event.Number, event.Table, event.Items)
//	for _, ticket := range tickets {
//	    // deliver ticket to the matching station room
//	}
type TicketRouter struct{}

// NewTicketRouter creates a new TicketRouter instance.
func NewTicketRouter() TicketRouter {
	return TicketRouter{}
}

// Route partitions the items of a dispatched order into at most two
// tickets, one per station family with matching items.
//
// Parameters:
//   - orderID: Identifier of the dispatched order
//   - number: Human-readable order number
//   - table: Table label
//   - items: The order's full item list
//
// Returns:
//   - []Ticket: Zero, one, or two tickets in deterministic order
//     (kitchen before bar)
func (TicketRouter) Route(orderID, number, table string, items []order.Item) []Ticket {
	var kitchen, bar []order.Item
	for _, item := range items {
		family, ok := station.FamilyOf(item.StationType())
		if !ok {
			continue
		}
		switch family {
		case station.FamilyKitchen:
			kitchen = append(kitchen, item)
		case station.FamilyBar:
			bar = append(bar, item)
		}
	}

	var tickets []Ticket
	if len(kitchen) > 0 {
		tickets = append(tickets, Ticket{
			Station: station.FamilyKitchen,
			OrderID: orderID,
			Number:  number,
			Table:   table,
			Items:   kitchen,
		})
	}
	if len(bar) > 0 {
		tickets = append(tickets, Ticket{
			Station: station.FamilyBar,
			OrderID: orderID,
			Number:  number,
			Table:   table,
			Items:   bar,
		})
	}

	return tickets
}
