package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status. The source identifies which surface asked for the
// change (management, kitchen display, bar display) and only affects how
// the change is recorded on the order's timeline.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orgID   kernel.UUID
	orderID kernel.UUID
	status  order.Status
	source  order.UpdateSource

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// The status must be a recognized value; any recognized value is accepted
// regardless of the order's current state.
func NewUpdateOrderStatusCommand(
	orgID, orderID kernel.UUID,
	status order.Status,
	source order.UpdateSource,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		source: source,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrgID returns the organization scope for the lookup.
func (c UpdateOrderStatusCommand) OrgID() kernel.UUID {
	return c.orgID
}

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// Source returns the surface that requested the change.
func (c UpdateOrderStatusCommand) Source() order.UpdateSource {
	return c.source
}

func (c *UpdateOrderStatusCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
