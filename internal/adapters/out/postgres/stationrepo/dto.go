// Package stationrepo provides data transfer objects and mapping functions
// for station directory persistence.
package stationrepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// StationDTO represents the database structure for persisting stations.
type StationDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID  uuid.UUID `gorm:"type:uuid;index"`
	Name   string
	Type   string
	Active bool
}

// TableName specifies the database table name for station entities.
func (StationDTO) TableName() string {
	return "stations"
}

// fromDomain converts a station domain entity to its database representation.
func fromDomain(aggregate *station.Station) StationDTO {
	return StationDTO{
		ID:     aggregate.ID().Bytes(),
		OrgID:  aggregate.OrgID().Bytes(),
		Name:   aggregate.Name(),
		Type:   aggregate.Type().String(),
		Active: aggregate.Active(),
	}
}

// toDomain converts a database DTO to a station domain entity.
func toDomain(dto StationDTO) (*station.Station, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}

	return station.RestoreStation(id, orgID, dto.Name, station.Type(dto.Type), dto.Active)
}
