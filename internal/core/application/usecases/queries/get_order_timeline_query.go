package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetOrderTimelineQueryIsNotConstructed = errors.New(
		"GetOrderTimelineQuery must be created via NewGetOrderTimelineQuery constructor",
	)
)

// GetOrderTimelineQuery retrieves the audit trail of a single order.
// The timeline is append-only, so entries come back in the order they were recorded.
type GetOrderTimelineQuery struct {
	orgID   kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTimelineQuery creates a query for an order's timeline.
func NewGetOrderTimelineQuery(orgID, orderID kernel.UUID) (GetOrderTimelineQuery, error) {
	if err := orgID.Validate(); err != nil {
		return GetOrderTimelineQuery{}, errs.NewValueIsRequiredErrorWithCause("orgID", err)
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderTimelineQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return GetOrderTimelineQuery{
		orgID:   orgID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrgID returns the organization scope of the lookup.
func (q GetOrderTimelineQuery) OrgID() kernel.UUID {
	return q.orgID
}

// OrderID returns the identifier of the order whose timeline is requested.
func (q GetOrderTimelineQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTimelineQueryIsNotConstructed)
}
