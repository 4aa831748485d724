package commands

import (
	"context"
	"time"
)

// ProcessPaymentCommandHandler settles an order's bill. Recording the
// payment forces the order to "completed" and appends the payment to its
// timeline. Payment completion is terminal and not station-relevant, so no
// lifecycle event is published.
type ProcessPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewProcessPaymentCommandHandler creates a handler for payment operations.
func NewProcessPaymentCommandHandler(uowFactory OrderUoWFactory) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command.
func (h ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) error {
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

	if err = aggregate.ProcessPayment(cmd.Method(), cmd.Amount(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
