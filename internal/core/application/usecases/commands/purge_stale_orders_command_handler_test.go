package commands_test

import (
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPurgeStaleOrdersCommand_Valid(t *testing.T) {
	cmd, err := commands.NewPurgeStaleOrdersCommand(24 * time.Hour)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, 24*time.Hour, cmd.Retention())
}

func TestNewPurgeStaleOrdersCommand_NonPositiveRetention(t *testing.T) {
	_, err := commands.NewPurgeStaleOrdersCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewPurgeStaleOrdersCommand(-time.Hour)
	require.Error(t, err)
}

func TestPurgeStaleOrdersCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.PurgeStaleOrdersCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPurgeStaleOrdersCommandIsNotConstructed)
}

func TestPurgeStaleOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewPurgeStaleOrdersCommand(24 * time.Hour)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("PurgeStale", mock.Anything, mock.MatchedBy(func(before time.Time) bool {
			return time.Since(before) >= 23*time.Hour
		})).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurgeStaleOrdersCommandHandler(factory)

	purged, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPurgeStaleOrdersCommandHandler_Handle_PurgeErrorRollsBack(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewPurgeStaleOrdersCommand(time.Hour)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("PurgeStale", mock.Anything, mock.Anything).Return(int64(0), assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurgeStaleOrdersCommandHandler(factory)

	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
