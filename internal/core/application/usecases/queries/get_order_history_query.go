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
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery retrieves a page of an organization's past orders,
// optionally narrowed by branch, lifecycle state, and creation date range.
// Unlike the live listing, history spans every state including terminal ones,
// which makes it the backing query for reporting views.
type GetOrderHistoryQuery struct {
	orgID    kernel.UUID
	branchID kernel.UUID
	status   order.Status
	dateFrom time.Time
	dateTo   time.Time
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for an organization's order history.
// Every filter is optional: pass empty strings to skip one. Dates accept
// RFC 3339 timestamps or plain "2006-01-02" dates; dateTo is compared
// inclusively against order creation time. Page numbering starts at 1;
// pageSize of 0 selects the default page size.
func NewGetOrderHistoryQuery(
	orgID kernel.UUID,
	branchID, status, dateFrom, dateTo string,
	page, pageSize int,
) (GetOrderHistoryQuery, error) {
	if err := orgID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, errs.NewValueIsRequiredErrorWithCause("orgID", err)
	}

	var branchFilter kernel.UUID
	if branchID != "" {
		parsed, err := kernel.UUIDFromString(branchID)
		if err != nil {
			return GetOrderHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause("branchID", err)
		}
		branchFilter = parsed
	}

	var statusFilter order.Status
	if status != "" {
		parsed, err := order.StatusFromString(status)
		if err != nil {
			return GetOrderHistoryQuery{}, err
		}
		statusFilter = parsed
	}

	from, err := parseFilterDate("dateFrom", dateFrom)
	if err != nil {
		return GetOrderHistoryQuery{}, err
	}
	to, err := parseFilterDate("dateTo", dateTo)
	if err != nil {
		return GetOrderHistoryQuery{}, err
	}

	if page < 1 {
		return GetOrderHistoryQuery{}, errs.NewValueIsInvalidError("page")
	}
	if pageSize < 0 || pageSize > maxPageSize {
		return GetOrderHistoryQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 0, maxPageSize)
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	return GetOrderHistoryQuery{
		orgID:    orgID,
		branchID: branchFilter,
		status:   statusFilter,
		dateFrom: from,
		dateTo:   to,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// parseFilterDate accepts an RFC 3339 timestamp or a bare date.
// An empty value means the bound is not set.
func parseFilterDate(paramName, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return parsed, nil
}

// OrgID returns the organization whose history is listed.
func (q GetOrderHistoryQuery) OrgID() kernel.UUID {
	return q.orgID
}

// BranchID returns the branch filter and whether one was set.
func (q GetOrderHistoryQuery) BranchID() (kernel.UUID, bool) {
	return q.branchID, q.branchID.Validate() == nil
}

// Status returns the lifecycle state filter, empty when listing all states.
func (q GetOrderHistoryQuery) Status() order.Status {
	return q.status
}

// DateFrom returns the lower creation-time bound, zero when not set.
func (q GetOrderHistoryQuery) DateFrom() time.Time {
	return q.dateFrom
}

// DateTo returns the upper creation-time bound, zero when not set.
func (q GetOrderHistoryQuery) DateTo() time.Time {
	return q.dateTo
}

// Page returns the 1-based page number.
func (q GetOrderHistoryQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page.
func (q GetOrderHistoryQuery) PageSize() int {
	return q.pageSize
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}
