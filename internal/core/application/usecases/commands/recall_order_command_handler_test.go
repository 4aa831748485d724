package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecallOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewRecallOrderCommand(orgID, orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, orgID, orderID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecallOrderCommandHandler(factory)

	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecallOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewRecallOrderCommand(orgID, orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, orgID, orderID).
			Return(errs.NewObjectNotFoundError("orderId", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecallOrderCommandHandler(factory)

	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestNewRecallOrderCommand_InvalidIDs(t *testing.T) {
	var invalidID kernel.UUID

	_, err := commands.NewRecallOrderCommand(invalidID, kernel.NewUUID())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "UUID must be created")
}
