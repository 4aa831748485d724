// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Orders are stored document-style: scalar columns for everything queries
// filter or sort on, JSONB columns for the nested item list, payment, and
// timeline. The order number is unique per organization.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrgID      uuid.UUID  `gorm:"type:uuid;index;uniqueIndex:idx_orders_org_number,priority:1"`
	BranchID   uuid.UUID  `gorm:"type:uuid;index"`
	Number     string     `gorm:"uniqueIndex:idx_orders_org_number,priority:2"`
	TableLabel string     `gorm:"column:table_label"`
	Customer   string
	StaffID    uuid.UUID  `gorm:"type:uuid"`
	StaffName  string
	Status     string     `gorm:"index"`
	Items      []ItemDTO  `gorm:"serializer:json;type:jsonb"`
	Subtotal   float64
	Tax        float64
	Total      float64
	Payment    *PaymentDTO        `gorm:"serializer:json;type:jsonb"`
	Timeline   []TimelineEntryDTO `gorm:"serializer:json;type:jsonb"`
	CreatedAt  time.Time          `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the JSON shape of one line item inside the orders table.
type ItemDTO struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	StationType string  `json:"stationType,omitempty"`
	StationName string  `json:"stationName,omitempty"`
}

// PaymentDTO is the JSON shape of the settled payment.
type PaymentDTO struct {
	Method      string    `json:"method"`
	Amount      float64   `json:"amount"`
	ProcessedAt time.Time `json:"processedAt"`
}

// TimelineEntryDTO is the JSON shape of one audit trail record.
// The outcome rides in the "status" key for compatibility with the
// dashboards consuming the raw documents.
type TimelineEntryDTO struct {
	Title       string    `json:"title"`
	Time        time.Time `json:"time"`
	Description string    `json:"description,omitempty"`
	Outcome     string    `json:"status"`
}

// OrderSequenceDTO backs the per-organization order number sequence.
// Rows are only ever touched through an atomic upsert, so concurrent
// reservations never hand out the same value twice.
type OrderSequenceDTO struct {
	OrgID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Value int64
}

// TableName specifies the database table name for order sequences.
func (OrderSequenceDTO) TableName() string {
	return "order_sequences"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
			Description: item.Description(),
			StationType: item.StationType().String(),
			StationName: item.StationName(),
		})
	}

	timeline := make([]TimelineEntryDTO, 0, len(aggregate.Timeline()))
	for _, entry := range aggregate.Timeline() {
		timeline = append(timeline, TimelineEntryDTO{
			Title:       entry.Title(),
			Time:        entry.Time(),
			Description: entry.Description(),
			Outcome:     entry.Outcome().String(),
		})
	}

	var payment *PaymentDTO
	if p := aggregate.Payment(); p != nil {
		payment = &PaymentDTO{
			Method:      p.Method(),
			Amount:      p.Amount(),
			ProcessedAt: p.ProcessedAt(),
		}
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		OrgID:      aggregate.OrgID().Bytes(),
		BranchID:   aggregate.BranchID().Bytes(),
		Number:     aggregate.Number(),
		TableLabel: aggregate.Table(),
		Customer:   aggregate.Customer(),
		StaffID:    aggregate.Staff().ID().Bytes(),
		StaffName:  aggregate.Staff().Name(),
		Status:     aggregate.Status().String(),
		Items:      items,
		Subtotal:   aggregate.Subtotal(),
		Tax:        aggregate.Tax(),
		Total:      aggregate.Total(),
		Payment:    payment,
		Timeline:   timeline,
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

// itemFromDTO rebuilds a domain item from its JSON shape.
func itemFromDTO(dto ItemDTO) (order.Item, error) {
	item, err := order.NewItem(dto.Name, dto.Quantity, dto.Price)
	if err != nil {
		return order.Item{}, err
	}
	if dto.Description != "" {
		item = item.WithDescription(dto.Description)
	}
	if dto.StationType != "" {
		stationType, typeErr := station.TypeFromString(dto.StationType)
		if typeErr != nil {
			return order.Item{}, typeErr
		}
		item, err = item.WithStation(stationType, dto.StationName)
		if err != nil {
			return order.Item{}, err
		}
	}
	return item, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items, payment, and timeline
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}
	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}
	staffID, err := kernel.UUIDFromBytes(dto.StaffID[:])
	if err != nil {
		return nil, err
	}

	staff, err := order.NewStaff(staffID, dto.StaffName)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemFromDTO(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	timeline := make([]order.TimelineEntry, 0, len(dto.Timeline))
	for _, entryDTO := range dto.Timeline {
		entry, entryErr := order.NewTimelineEntry(
			entryDTO.Title,
			entryDTO.Time,
			entryDTO.Description,
			order.Outcome(entryDTO.Outcome),
		)
		if entryErr != nil {
			return nil, entryErr
		}
		timeline = append(timeline, entry)
	}

	var payment *order.Payment
	if dto.Payment != nil {
		p, paymentErr := order.NewPayment(dto.Payment.Method, dto.Payment.Amount, dto.Payment.ProcessedAt)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payment = &p
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:        id,
		OrgID:     orgID,
		BranchID:  branchID,
		Number:    dto.Number,
		Table:     dto.TableLabel,
		Customer:  dto.Customer,
		Staff:     staff,
		Status:    order.Status(dto.Status),
		Items:     items,
		Payment:   payment,
		Timeline:  timeline,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}
