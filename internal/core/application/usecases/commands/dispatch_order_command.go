package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand represents a request to send an order to its
// preparation stations. Targets optionally single out specific items; they
// are carried on the dispatched event for station displays but do not
// change which items get routed.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orgID   kernel.UUID
	orderID kernel.UUID
	targets []order.DispatchTarget

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a command to dispatch an order.
// Targets may be empty; when present, each must name an item and a valid
// station type.
func NewDispatchOrderCommand(
	orgID, orderID kernel.UUID,
	targets []order.DispatchTarget,
) (DispatchOrderCommand, error) {
	cmd := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setOrderID(orderID),
		cmd.setTargets(targets),
	); err != nil {
		return DispatchOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// OrgID returns the organization scope for the lookup.
func (c DispatchOrderCommand) OrgID() kernel.UUID {
	return c.orgID
}

// OrderID returns the order to dispatch.
func (c DispatchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Targets returns the optional dispatch targets.
func (c DispatchOrderCommand) Targets() []order.DispatchTarget {
	return c.targets
}

func (c *DispatchOrderCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *DispatchOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DispatchOrderCommand) setTargets(targets []order.DispatchTarget) error {
	for _, target := range targets {
		if err := target.Validate(); err != nil {
			return err
		}
	}
	c.targets = targets
	return nil
}
