package commands

import (
	"context"
	"time"
)

// PurgeStaleOrdersCommandHandler sweeps out cancelled orders older than the
// retention window. The sweep publishes no events; removed orders are gone,
// not transitioned.
type PurgeStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeStaleOrdersCommandHandler creates a handler for retention sweeps.
func NewPurgeStaleOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeStaleOrdersCommandHandler {
	return PurgeStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command. Returns the number of removed orders.
func (h PurgeStaleOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeStaleOrdersCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Retention())
	purged, err := uow.OrderRepository().PurgeStale(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
