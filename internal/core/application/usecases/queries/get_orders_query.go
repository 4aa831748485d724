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
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetOrdersQuery retrieves a page of orders belonging to an organization.
// Optional status and branch filters narrow the listing.
//
// Example:
//
//	query, err := queries.NewGetOrdersQuery(orgID, "pending", "", 1, 20)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	orgID    kernel.UUID
	status   order.Status
	branchID kernel.UUID
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for an organization's order listing.
// Pass an empty status to list orders in every state and an empty branchID
// to list orders across all branches. Page numbering starts at 1; pageSize
// of 0 selects the default page size.
func NewGetOrdersQuery(orgID kernel.UUID, status, branchID string, page, pageSize int) (GetOrdersQuery, error) {
	if err := orgID.Validate(); err != nil {
		return GetOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("orgID", err)
	}

	var statusFilter order.Status
	if status != "" {
		parsed, err := order.StatusFromString(status)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		statusFilter = parsed
	}

	var branchFilter kernel.UUID
	if branchID != "" {
		parsed, err := kernel.UUIDFromString(branchID)
		if err != nil {
			return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("branchID", err)
		}
		branchFilter = parsed
	}

	if page < 1 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}
	if pageSize < 0 || pageSize > maxPageSize {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 0, maxPageSize)
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	return GetOrdersQuery{
		orgID:    orgID,
		status:   statusFilter,
		branchID: branchFilter,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OrgID returns the organization whose orders are listed.
func (q GetOrdersQuery) OrgID() kernel.UUID {
	return q.orgID
}

// Status returns the lifecycle state filter, empty when listing all states.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// BranchID returns the branch filter and whether one was set.
func (q GetOrdersQuery) BranchID() (kernel.UUID, bool) {
	return q.branchID, q.branchID.Validate() == nil
}

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page.
func (q GetOrdersQuery) PageSize() int {
	return q.pageSize
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse represents one order in a listing.
// Carries enough detail for dashboards without the full timeline.
type GetOrdersQueryResponse struct {
	ID        kernel.UUID
	BranchID  kernel.UUID
	Number    string
	Table     string
	Customer  string
	StaffName string
	Status    order.Status
	ItemCount int
	Total     float64
	CreatedAt time.Time
}
