package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := queries.NewGetOrdersQuery(orgID, "", "", 1, 20)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of the organization's orders.
// Results are sorted newest first. Other organizations' orders are never returned.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			branch_id,
			number,
			table_label,
			customer,
			staff_name,
			status,
			COALESCE(jsonb_array_length(items), 0),
			total,
			created_at
		FROM orders
		WHERE org_id = ?
	`
	args := []any{query.OrgID().Bytes()}

	if query.Status() != "" {
		stmt += " AND status = ?"
		args = append(args, string(query.Status()))
	}

	if branchID, ok := query.BranchID(); ok {
		stmt += " AND branch_id = ?"
		args = append(args, branchID.Bytes())
	}

	stmt += " ORDER BY created_at DESC, number DESC LIMIT ? OFFSET ?"
	args = append(args, query.PageSize(), (query.Page()-1)*query.PageSize())

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id, branchID uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&branchID,
			&resp.Number,
			&resp.Table,
			&resp.Customer,
			&resp.StaffName,
			&status,
			&resp.ItemCount,
			&resp.Total,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		orderBranchID, idErr := kernel.UUIDFromBytes(branchID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.BranchID = orderBranchID

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = orderStatus

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
