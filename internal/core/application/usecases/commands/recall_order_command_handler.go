package commands

import (
	"context"
)

// RecallOrderCommandHandler permanently removes an order within the
// caller's organization. Removing an order in another tenant surfaces as
// not-found, the same as removing one that never existed.
type RecallOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecallOrderCommandHandler creates a handler for recall operations.
func NewRecallOrderCommandHandler(uowFactory OrderUoWFactory) RecallOrderCommandHandler {
	return RecallOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recall command.
func (h RecallOrderCommandHandler) Handle(ctx context.Context, cmd RecallOrderCommand) error {
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

	if err := uow.OrderRepository().Delete(ctx, cmd.OrgID(), cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
