package commands_test

import (
	"testing"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/ledger"
	"foodmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
}

func TestNewCancelOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	l, cust, rest, _ := marketLedger(t)
	orderID := placePizzaOrder(t, l, cust, rest)

	cmd, err := commands.NewCancelOrderCommand(orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(l, factory)
	require.NoError(t, h.Handle(ctx, cmd))

	cancelled, err := l.OrderByID(orderID)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_UnknownOrder(t *testing.T) {
	l, _, _, _ := marketLedger(t)
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(l, new(MockOrderUoWFactory))
	require.Error(t, h.Handle(t.Context(), cmd))
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCancelOrderCommandHandler(ledger.NewLedger(), new(MockOrderUoWFactory))
	require.Error(t, h.Handle(t.Context(), commands.CancelOrderCommand{}))
}
