package orderrepo

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
// Every operation is organization scoped: a lookup in the wrong
// organization is indistinguishable from a lookup for a missing order.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. A duplicate order number within the
// organization surfaces as an already-exists error.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("number", aggregate.Number(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
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
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID within an organization.
func (r *GormOrderRepository) Get(ctx context.Context, orgID, id kernel.UUID) (*order.Order, error) {
	if err := errors.Join(orgID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND org_id = ?", id.Bytes(), orgID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete permanently removes an order within an organization.
func (r *GormOrderRepository) Delete(ctx context.Context, orgID, id kernel.UUID) error {
	if err := errors.Join(orgID.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND org_id = ?", id.Bytes(), orgID.Bytes()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	return nil
}

// NextNumber atomically reserves the next order sequence value for an
// organization. The upsert runs as a single statement, so two concurrent
// reservations for the same organization always see distinct values.
func (r *GormOrderRepository) NextNumber(ctx context.Context, orgID kernel.UUID) (int64, error) {
	if err := orgID.Validate(); err != nil {
		return 0, err
	}

	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_sequences (org_id, value)
		VALUES (?, 1)
		ON CONFLICT (org_id) DO UPDATE SET value = order_sequences.value + 1
		RETURNING value
	`, orgID.Bytes()).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}

// PurgeStale removes cancelled orders last touched before the cutoff.
// Orders with a recorded payment are kept: a settled order must stay
// resolvable for as long as its payment record exists, even after a
// permissive status change moved it to cancelled. Runs across
// organizations; this is a retention sweep, not a tenant operation.
func (r *GormOrderRepository) PurgeStale(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ? AND payment IS NULL", string(order.Cancelled), before).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
