package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// DispatchOrderCommandHandler handles order dispatch. It loads the order
// within the caller's organization, moves it to "in_prep", persists the
// change, and publishes a dispatched event after the commit. The event is
// what drives station ticket fan-out; a failed dispatch publishes nothing.
type DispatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewDispatchOrderCommandHandler creates a handler for dispatch operations.
func NewDispatchOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the dispatch command. A lookup miss, including an order
// that exists in another organization, surfaces as a not-found error.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrgID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = aggregate.Dispatch(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, order.DispatchedEvent{
		OrderID:  aggregate.ID(),
		OrgID:    aggregate.OrgID(),
		BranchID: aggregate.BranchID(),
		Number:   aggregate.Number(),
		Table:    aggregate.Table(),
		Items:    aggregate.Items(),
		Targets:  cmd.Targets(),
	})

	return nil
}
