package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/station"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStationsQueryHandler retrieves the station directory from the database.
type GetStationsQueryHandler struct {
	db *gorm.DB
}

// NewGetStationsQueryHandler creates a handler for station directory queries.
func NewGetStationsQueryHandler(db *gorm.DB) GetStationsQueryHandler {
	return GetStationsQueryHandler{db: db}
}

// Handle executes the query to retrieve the organization's stations.
// Returns stations sorted by name for consistent output.
func (h GetStationsQueryHandler) Handle(
	ctx context.Context,
	query GetStationsQuery,
) ([]GetStationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stations := make([]GetStationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			type,
			active
		FROM stations
		WHERE org_id = ?
		ORDER BY name
	`, query.OrgID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStationsQueryResponse
		var id uuid.UUID
		var stationType string

		err = rows.Scan(
			&id,
			&resp.Name,
			&stationType,
			&resp.Active,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		parsedType, typeErr := station.TypeFromString(stationType)
		if typeErr != nil {
			return nil, typeErr
		}
		resp.Type = parsedType

		stations = append(stations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}
