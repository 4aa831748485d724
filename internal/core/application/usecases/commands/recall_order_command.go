package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrRecallOrderCommandIsNotConstructed = errors.New(
	"RecallOrderCommand must be created via NewRecallOrderCommand constructor",
)

// RecallOrderCommand represents a request to permanently remove an order.
// Recall is an administrative correction for orders entered by mistake; it
// is not a status transition and leaves no trace in the store.
type RecallOrderCommand struct { //nolint:recvcheck //using for validation
	orgID   kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecallOrderCommand creates a command to remove an order.
func NewRecallOrderCommand(orgID, orderID kernel.UUID) (RecallOrderCommand, error) {
	cmd := RecallOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setOrderID(orderID),
	); err != nil {
		return RecallOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecallOrderCommand) Validate() error {
	return c.guard.Validate(ErrRecallOrderCommandIsNotConstructed)
}

// OrgID returns the organization scope for the lookup.
func (c RecallOrderCommand) OrgID() kernel.UUID {
	return c.orgID
}

// OrderID returns the order to remove.
func (c RecallOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RecallOrderCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *RecallOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
