package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTableIsRequired     = errors.New("table is required")
	ErrStaffNameIsRequired = errors.New("staff name is required")
	ErrItemsAreRequired    = errors.New("at least one item is required")
)

// CreateOrderCommand represents a request to open a new restaurant order.
// Encapsulates the table, the optional customer label, the acting staff
// member, and the requested line items.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, orgID, branchID, staffID,
//	    "T5", "Walk-in", "Dana", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	orgID     kernel.UUID
	branchID  kernel.UUID
	staffID   kernel.UUID
	table     string
	customer  string
	staffName string
	items     []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates identifiers, requires a table and staff name, and requires at
// least one item. Item contents are validated later against the domain
// model when the handler builds the order.
func NewCreateOrderCommand(
	orderID, orgID, branchID, staffID kernel.UUID,
	table, customer, staffName string,
	items []ItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrgID(orgID),
		cmd.setBranchID(branchID),
		cmd.setStaffID(staffID),
		cmd.setTable(table),
		cmd.setStaffName(staffName),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrgID returns the organization opening the order.
func (c CreateOrderCommand) OrgID() kernel.UUID {
	return c.orgID
}

// BranchID returns the branch the order is taken at.
func (c CreateOrderCommand) BranchID() kernel.UUID {
	return c.branchID
}

// StaffID returns the acting staff member's identifier.
func (c CreateOrderCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Table returns the table label.
func (c CreateOrderCommand) Table() string {
	return c.table
}

// Customer returns the optional customer label.
func (c CreateOrderCommand) Customer() string {
	return c.customer
}

// StaffName returns the acting staff member's display name.
func (c CreateOrderCommand) StaffName() string {
	return c.staffName
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *CreateOrderCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	c.branchID = branchID
	return nil
}

func (c *CreateOrderCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	c.staffID = staffID
	return nil
}

func (c *CreateOrderCommand) setTable(table string) error {
	if table == "" {
		return ErrTableIsRequired
	}
	c.table = table
	return nil
}

func (c *CreateOrderCommand) setStaffName(staffName string) error {
	if staffName == "" {
		return ErrStaffNameIsRequired
	}
	c.staffName = staffName
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	c.items = items
	return nil
}
