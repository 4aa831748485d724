package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/station"
	"restaurant/internal/pkg/errs"
)

// Item is a line item on an order. It is an immutable value object: items
// are replaced wholesale when an order is edited, never mutated in place.
//
// An item optionally carries a station type that decides which station
// ticket it lands on during dispatch. Items without a station type (or with
// one outside the kitchen and bar families) are billed normally but never
// appear on a station ticket.
type Item struct {
	name        string
	quantity    int
	price       float64
	description string
	stationType station.Type
	stationName string
}

// NewItem creates a validated line item.
//
// Parameters:
//   - name: Menu item name (required)
//   - quantity: Number of units (must be at least 1)
//   - price: Unit price (must not be negative)
//
// Returns:
//   - Item: The created item if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Optional attributes (description, station routing) are set through
// WithDescription and WithStation.
func NewItem(name string, quantity int, price float64) (Item, error) {
	var item Item

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// WithDescription returns a copy of the item with the description set.
func (i Item) WithDescription(description string) Item {
	i.description = description
	return i
}

// WithStation returns a copy of the item routed to a preparation station.
// The station type must be valid; the station name is display-only.
func (i Item) WithStation(stationType station.Type, stationName string) (Item, error) {
	if err := stationType.Validate(); err != nil {
		return Item{}, err
	}
	i.stationType = stationType
	i.stationName = stationName
	return i, nil
}

// Name returns the menu item name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

// Description returns the free-form item note, if any.
func (i Item) Description() string {
	return i.description
}

// StationType returns the preparation station type the item routes to.
// The zero value means the item is not routed to any station.
func (i Item) StationType() station.Type {
	return i.stationType
}

// StationName returns the display name of the routed station, if any.
func (i Item) StationName() string {
	return i.stationName
}

// LineTotal returns quantity times unit price.
func (i Item) LineTotal() float64 {
	return float64(i.quantity) * i.price
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%v is negative", price),
		)
	}
	i.price = price
	return nil
}
