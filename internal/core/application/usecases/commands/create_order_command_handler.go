package commands

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// It reserves the next order number for the organization, builds the order
// aggregate in "pending" status, persists it, and publishes a created event
// after the transaction commits.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand(orderID, orgID, branchID, staffID,
//	    "T5", "", "Dana", items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for post-commit notification.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// The order number is reserved atomically inside the same transaction as
// the insert, so concurrent creations in one organization never collide.
// The created event is published only after a successful commit.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return err
	}

	staff, err := order.NewStaff(cmd.StaffID(), cmd.StaffName())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	sequence, err := orderRepo.NextNumber(ctx, cmd.OrgID())
	if err != nil {
		return err
	}
	number := fmt.Sprintf("#ORD-%04d", sequence)

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.OrgID(), cmd.BranchID(),
		number, cmd.Table(), cmd.Customer(), staff, items, time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, order.CreatedEvent{
		OrderID:  aggregate.ID(),
		OrgID:    aggregate.OrgID(),
		BranchID: aggregate.BranchID(),
		Number:   aggregate.Number(),
		Table:    aggregate.Table(),
		Status:   aggregate.Status(),
		Items:    aggregate.Items(),
		Total:    aggregate.Total(),
	})

	return nil
}
