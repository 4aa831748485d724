package commands

import (
	"context"
	"time"
)

// UpdateOrderCommandHandler edits an open order's items, table, or
// customer label. Edits do not touch the status or timeline and publish no
// lifecycle event; station displays pick up the current item list with the
// next dispatch.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	now := time.Now().UTC()

	if cmd.Items() != nil {
		items, itemsErr := buildItems(cmd.Items())
		if itemsErr != nil {
			return itemsErr
		}
		if err = aggregate.ReplaceItems(items, now); err != nil {
			return err
		}
	}

	if cmd.Table() != nil {
		if err = aggregate.MoveToTable(*cmd.Table(), now); err != nil {
			return err
		}
	}

	if cmd.Customer() != nil {
		aggregate.SetCustomer(*cmd.Customer(), now)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
