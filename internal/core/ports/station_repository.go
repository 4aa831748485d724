package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/station"
)

// StationRepository defines the persistence contract for the station
// directory. Like orders, stations are organization-scoped.
type StationRepository interface {
	// Add persists a new station.
	Add(ctx context.Context, aggregate *station.Station) error

	// Update persists changes to an existing station.
	Update(ctx context.Context, aggregate *station.Station) error

	// Get retrieves a station by identifier within an organization.
	Get(ctx context.Context, orgID, id kernel.UUID) (*station.Station, error)

	// GetAll retrieves every station of an organization.
	GetAll(ctx context.Context, orgID kernel.UUID) ([]*station.Station, error)
}
