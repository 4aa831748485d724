package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/station"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStationOrdersQueryHandler retrieves a station family's preparation queue.
// The status filter runs in SQL; item narrowing happens in memory because the
// items column is a JSON document.
type GetStationOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStationOrdersQueryHandler creates a handler for station queue queries.
func NewGetStationOrdersQueryHandler(db *gorm.DB) GetStationOrdersQueryHandler {
	return GetStationOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the station family's active orders.
// Results are sorted oldest first so stations work the queue in arrival order.
func (h GetStationOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStationOrdersQuery,
) ([]GetStationOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetStationOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			branch_id,
			number,
			table_label,
			status,
			items,
			created_at
		FROM orders
		WHERE org_id = ? AND status IN (?, ?)
		ORDER BY created_at ASC, number ASC
	`, query.OrgID().Bytes(), string(order.Pending), string(order.InPrep)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStationOrdersQueryResponse
		var id, branchID uuid.UUID
		var status string
		var itemsRaw []byte

		err = rows.Scan(
			&id,
			&branchID,
			&resp.Number,
			&resp.Table,
			&status,
			&itemsRaw,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.BranchID, err = kernel.UUIDFromBytes(branchID[:]); err != nil {
			return nil, err
		}

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = orderStatus

		items, itemsErr := unmarshalItems(itemsRaw)
		if itemsErr != nil {
			return nil, itemsErr
		}
		resp.Items = filterItemsByFamily(items, query.Family())
		if len(resp.Items) == 0 {
			continue
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// filterItemsByFamily keeps only the lines whose station type routes to the family.
func filterItemsByFamily(items []OrderItemResponse, family station.Family) []OrderItemResponse {
	filtered := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		stationType, err := station.TypeFromString(item.StationType)
		if err != nil {
			continue
		}
		if family.Contains(stationType) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
