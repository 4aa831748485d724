package stationrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/station"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStationRepository implements StationRepository using GORM.
type GormStationRepository struct {
	db *gorm.DB
}

// NewGormStationRepository creates a new GORM station repository.
func NewGormStationRepository(db *gorm.DB) *GormStationRepository {
	return &GormStationRepository{db: db}
}

// Add saves a new station to the database.
func (r *GormStationRepository) Add(ctx context.Context, aggregate *station.Station) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("stationId", aggregate.ID().String(), err)
		}
		return err
	}

	return nil
}

// Update saves an existing station to the database.
func (r *GormStationRepository) Update(ctx context.Context, aggregate *station.Station) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Where("id = ? AND org_id = ?", dto.ID, dto.OrgID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stationId", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a station by ID within an organization.
func (r *GormStationRepository) Get(ctx context.Context, orgID, id kernel.UUID) (*station.Station, error) {
	if err := errors.Join(orgID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto StationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND org_id = ?", id.Bytes(), orgID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stationId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every station of an organization, ordered by name.
func (r *GormStationRepository) GetAll(ctx context.Context, orgID kernel.UUID) ([]*station.Station, error) {
	if err := orgID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StationDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "org_id = ?", orgID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	stations := make([]*station.Station, 0, len(dtos))
	for _, dto := range dtos {
		s, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		stations = append(stations, s)
	}

	return stations, nil
}
