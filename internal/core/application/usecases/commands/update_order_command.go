package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrUpdateOrderCommandIsEmpty = errors.New("update must change at least one field")
)

// UpdateOrderCommand represents a request to edit an open order: replace
// its items, move it to another table, or change the customer label.
// Unset fields are left untouched. Editing never changes the order's
// status and leaves no timeline entry; totals are recomputed when items
// change.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orgID    kernel.UUID
	orderID  kernel.UUID
	items    []ItemInput
	table    *string
	customer *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an order. At least one
// of items, table, or customer must be provided; nil pointers and a nil
// item slice mean "leave unchanged".
func NewUpdateOrderCommand(
	orgID, orderID kernel.UUID,
	items []ItemInput,
	table, customer *string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		items:    items,
		table:    table,
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setOrderID(orderID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	if items == nil && table == nil && customer == nil {
		return UpdateOrderCommand{}, ErrUpdateOrderCommandIsEmpty
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrgID returns the organization scope for the lookup.
func (c UpdateOrderCommand) OrgID() kernel.UUID {
	return c.orgID
}

// OrderID returns the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement items, or nil to keep the current ones.
func (c UpdateOrderCommand) Items() []ItemInput {
	return c.items
}

// Table returns the new table label, or nil to keep the current one.
func (c UpdateOrderCommand) Table() *string {
	return c.table
}

// Customer returns the new customer label, or nil to keep the current one.
func (c UpdateOrderCommand) Customer() *string {
	return c.customer
}

func (c *UpdateOrderCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
