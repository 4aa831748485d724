package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full detail of a single order, including its
// items, payment and timeline. Lookups are scoped to one organization, so an
// order belonging to a different organization is reported as not found.
type GetOrderQuery struct {
	orgID   kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order's detail view.
func NewGetOrderQuery(orgID, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orgID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orgID", err)
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return GetOrderQuery{
		orgID:   orgID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrgID returns the organization scope of the lookup.
func (q GetOrderQuery) OrgID() kernel.UUID {
	return q.orgID
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse represents the complete read model of one order.
type GetOrderQueryResponse struct {
	ID        kernel.UUID
	BranchID  kernel.UUID
	Number    string
	Table     string
	Customer  string
	StaffID   kernel.UUID
	StaffName string
	Status    order.Status
	Items     []OrderItemResponse
	Subtotal  float64
	Tax       float64
	Total     float64
	Payment   *PaymentResponse
	Timeline  []TimelineEntryResponse
	CreatedAt time.Time
	UpdatedAt time.Time
}
