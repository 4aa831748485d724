package order

import (
	"fmt"
	"time"

	"restaurant/internal/pkg/errs"
)

// Payment records a settled payment against an order. An order has at most
// one payment; processing a payment closes the order.
type Payment struct {
	method      string
	amount      float64
	processedAt time.Time
}

// NewPayment creates a validated payment record.
// The method is required and the amount must not be negative.
func NewPayment(method string, amount float64, processedAt time.Time) (Payment, error) {
	if method == "" {
		return Payment{}, errs.NewValueIsRequiredError("method")
	}
	if amount < 0 {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%v is negative", amount),
		)
	}

	return Payment{
		method:      method,
		amount:      amount,
		processedAt: processedAt,
	}, nil
}

// Method returns the payment method (e.g. "cash", "card").
func (p Payment) Method() string {
	return p.method
}

// Amount returns the amount paid.
func (p Payment) Amount() float64 {
	return p.amount
}

// ProcessedAt returns when the payment was settled.
func (p Payment) ProcessedAt() time.Time {
	return p.processedAt
}
