package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/station"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetStationOrdersQueryIsNotConstructed = errors.New(
		"GetStationOrdersQuery must be created via NewGetStationOrdersQuery constructor",
	)
)

// GetStationOrdersQuery retrieves the preparation queue of a station family.
// Only orders that still need work, those in pending or in_prep status, are
// returned, and each order's items are narrowed to the ones the requested
// family prepares. Orders without any matching items are excluded entirely.
//
// Example:
//
//	query, err := queries.NewGetStationOrdersQuery(orgID, station.FamilyKitchen)
//	if err != nil {
//	    return err
//	}
//
//	queue, err := handler.Handle(ctx, query)
type GetStationOrdersQuery struct {
	orgID  kernel.UUID
	family station.Family

	guard guard.ConstructorGuard
}

// NewGetStationOrdersQuery creates a query for a station family's work queue.
func NewGetStationOrdersQuery(orgID kernel.UUID, family station.Family) (GetStationOrdersQuery, error) {
	if err := orgID.Validate(); err != nil {
		return GetStationOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("orgID", err)
	}
	if err := family.Validate(); err != nil {
		return GetStationOrdersQuery{}, err
	}

	return GetStationOrdersQuery{
		orgID:  orgID,
		family: family,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// OrgID returns the organization scope of the queue.
func (q GetStationOrdersQuery) OrgID() kernel.UUID {
	return q.orgID
}

// Family returns the station family whose queue is requested.
func (q GetStationOrdersQuery) Family() station.Family {
	return q.family
}

// Validate ensures the query was created through the constructor.
func (q GetStationOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStationOrdersQueryIsNotConstructed)
}

// GetStationOrdersQueryResponse represents one order on a station's queue.
// Items contains only the lines the station family prepares.
type GetStationOrdersQueryResponse struct {
	ID        kernel.UUID
	BranchID  kernel.UUID
	Number    string
	Table     string
	Status    order.Status
	Items     []OrderItemResponse
	CreatedAt time.Time
}
