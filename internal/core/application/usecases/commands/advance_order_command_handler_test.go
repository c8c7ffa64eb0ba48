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

func advanceTo(t *testing.T, l *ledger.Ledger, orderID kernel.UUID, target order.Status) error {
	t.Helper()

	ctx := t.Context()
	cmd, err := commands.NewAdvanceOrderCommand(orderID, target)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	courierRepo := new(MockCourierRepository)
	if target == order.Delivered {
		courierRepo.On("Update", mock.Anything, mock.AnythingOfType("*courier.Courier")).Return(nil).Once()
	}

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Maybe()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(l, factory)
	return h.Handle(ctx, cmd)
}

func TestAdvanceOrderCommandHandler_Handle_FullLifecycle(t *testing.T) {
	l, cust, rest, cour := marketLedger(t)
	orderID := placePizzaOrder(t, l, cust, rest)

	require.NoError(t, advanceTo(t, l, orderID, order.Preparing))
	require.NoError(t, advanceTo(t, l, orderID, order.ReadyForDelivery))
	require.NoError(t, advanceTo(t, l, orderID, order.InDelivery))
	require.NoError(t, advanceTo(t, l, orderID, order.Delivered))

	delivered, err := l.OrderByID(orderID)
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, delivered.Status())
	assert.Equal(t, 1, cour.DeliveredCount())
}

func TestAdvanceOrderCommandHandler_Handle_SkippedStep(t *testing.T) {
	l, cust, rest, _ := marketLedger(t)
	orderID := placePizzaOrder(t, l, cust, rest)

	ctx := t.Context()
	cmd, err := commands.NewAdvanceOrderCommand(orderID, order.InDelivery)
	require.NoError(t, err)

	h := commands.NewAdvanceOrderCommandHandler(l, new(MockUoWFactory))
	require.Error(t, h.Handle(ctx, cmd))
}

func TestAdvanceOrderCommandHandler_Handle_UnknownOrder(t *testing.T) {
	l, _, _, _ := marketLedger(t)
	cmd, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), order.Preparing)
	require.NoError(t, err)

	h := commands.NewAdvanceOrderCommandHandler(l, new(MockUoWFactory))
	require.Error(t, h.Handle(t.Context(), cmd))
}

func TestAdvanceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewAdvanceOrderCommandHandler(ledger.NewLedger(), new(MockUoWFactory))
	require.Error(t, h.Handle(t.Context(), commands.AdvanceOrderCommand{}))
}
