package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrProcessPaymentCommandIsNotConstructed = errors.New(
		"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
	)
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
	ErrPaymentAmountIsInvalid  = errors.New("payment amount must not be negative")
)

// ProcessPaymentCommand represents a request to settle an order's bill.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	orgID   kernel.UUID
	orderID kernel.UUID
	method  string
	amount  float64

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command to record a payment.
// Requires a payment method and a non-negative amount.
func NewProcessPaymentCommand(
	orgID, orderID kernel.UUID,
	method string,
	amount float64,
) (ProcessPaymentCommand, error) {
	cmd := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setOrderID(orderID),
		cmd.setMethod(method),
		cmd.setAmount(amount),
	); err != nil {
		return ProcessPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// OrgID returns the organization scope for the lookup.
func (c ProcessPaymentCommand) OrgID() kernel.UUID {
	return c.orgID
}

// OrderID returns the order being paid.
func (c ProcessPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the payment method.
func (c ProcessPaymentCommand) Method() string {
	return c.method
}

// Amount returns the amount paid.
func (c ProcessPaymentCommand) Amount() float64 {
	return c.amount
}

func (c *ProcessPaymentCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *ProcessPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ProcessPaymentCommand) setMethod(method string) error {
	if method == "" {
		return ErrPaymentMethodIsRequired
	}
	c.method = method
	return nil
}

func (c *ProcessPaymentCommand) setAmount(amount float64) error {
	if amount < 0 {
		return ErrPaymentAmountIsInvalid
	}
	c.amount = amount
	return nil
}
