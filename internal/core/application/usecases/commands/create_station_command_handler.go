package commands

import (
	"context"

	"restaurant/internal/core/domain/model/station"
)

// CreateStationCommandHandler registers preparation stations in the
// organization's directory.
type CreateStationCommandHandler struct {
	uowFactory StationUoWFactory
}

// NewCreateStationCommandHandler creates a handler for station registration.
func NewCreateStationCommandHandler(uowFactory StationUoWFactory) CreateStationCommandHandler {
	return CreateStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the station registration command.
func (h CreateStationCommandHandler) Handle(ctx context.Context, cmd CreateStationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := station.NewStation(cmd.StationID(), cmd.OrgID(), cmd.Name(), cmd.StationType())
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

	if err = uow.StationRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
