package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order's full detail from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := queries.NewGetOrderQuery(orgID, orderID)
//
//	detail, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // order does not exist within this organization
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with items, payment and timeline.
// Returns ObjectNotFoundError when the order does not exist in the organization.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			branch_id,
			number,
			table_label,
			customer,
			staff_id,
			staff_name,
			status,
			items,
			subtotal,
			tax,
			total,
			payment,
			timeline,
			created_at,
			updated_at
		FROM orders
		WHERE id = ? AND org_id = ?
	`, query.OrderID().Bytes(), query.OrgID().Bytes()).Row()

	var resp GetOrderQueryResponse
	var id, branchID, staffID uuid.UUID
	var status string
	var itemsRaw, paymentRaw, timelineRaw []byte

	err := row.Scan(
		&id,
		&branchID,
		&resp.Number,
		&resp.Table,
		&resp.Customer,
		&staffID,
		&resp.StaffName,
		&status,
		&itemsRaw,
		&resp.Subtotal,
		&resp.Tax,
		&resp.Total,
		&paymentRaw,
		&timelineRaw,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.BranchID, err = kernel.UUIDFromBytes(branchID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.StaffID, err = kernel.UUIDFromBytes(staffID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = orderStatus

	if resp.Items, err = unmarshalItems(itemsRaw); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Payment, err = unmarshalPayment(paymentRaw); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Timeline, err = unmarshalTimeline(timelineRaw); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
