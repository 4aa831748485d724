package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderTimelineQueryHandler retrieves an order's timeline from the database.
type GetOrderTimelineQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTimelineQueryHandler creates a handler for order timeline queries.
func NewGetOrderTimelineQueryHandler(db *gorm.DB) GetOrderTimelineQueryHandler {
	return GetOrderTimelineQueryHandler{db: db}
}

// Handle executes the query to retrieve one order's timeline entries.
// Returns ObjectNotFoundError when the order does not exist in the organization.
func (h GetOrderTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTimelineQuery,
) ([]TimelineEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT timeline
		FROM orders
		WHERE id = ? AND org_id = ?
	`, query.OrderID().Bytes(), query.OrgID().Bytes()).Row()

	var timelineRaw []byte
	err := row.Scan(&timelineRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return nil, err
	}

	return unmarshalTimeline(timelineRaw)
}
