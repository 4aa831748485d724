package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/station"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetStationsQueryIsNotConstructed = errors.New(
		"GetStationsQuery must be created via NewGetStationsQuery constructor",
	)
)

// GetStationsQuery retrieves all preparation stations registered for an organization.
type GetStationsQuery struct {
	orgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStationsQuery creates a query for an organization's station directory.
func NewGetStationsQuery(orgID kernel.UUID) (GetStationsQuery, error) {
	if err := orgID.Validate(); err != nil {
		return GetStationsQuery{}, errs.NewValueIsRequiredErrorWithCause("orgID", err)
	}

	return GetStationsQuery{
		orgID: orgID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// OrgID returns the organization whose stations are listed.
func (q GetStationsQuery) OrgID() kernel.UUID {
	return q.orgID
}

// Validate ensures the query was created through the constructor.
func (q GetStationsQuery) Validate() error {
	return q.guard.Validate(ErrGetStationsQueryIsNotConstructed)
}

// GetStationsQueryResponse represents one station in the directory.
type GetStationsQueryResponse struct {
	ID     kernel.UUID
	Name   string
	Type   station.Type
	Active bool
}
