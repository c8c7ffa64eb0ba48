package commands_test

import (
	"testing"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/domain/model/ledger"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplyTargetProfitCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewApplyTargetProfitCommand(30)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, cmd.TargetProfit(), 0)
}

func TestNewApplyTargetProfitCommand_NegativeTarget(t *testing.T) {
	_, err := commands.NewApplyTargetProfitCommand(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestApplyTargetProfitCommandHandler_Handle_Success(t *testing.T) {
	l, cust, rest, _ := marketLedger(t)
	orderID := placePizzaOrder(t, l, cust, rest)
	require.NoError(t, advanceTo(t, l, orderID, order.Preparing))
	require.NoError(t, advanceTo(t, l, orderID, order.ReadyForDelivery))
	require.NoError(t, advanceTo(t, l, orderID, order.InDelivery))
	require.NoError(t, advanceTo(t, l, orderID, order.Delivered))

	cmd, err := commands.NewApplyTargetProfitCommand(30)
	require.NoError(t, err)

	h := commands.NewApplyTargetProfitCommandHandler(l)
	require.NoError(t, h.Handle(t.Context(), cmd))

	// one delivered order of 100: serviceFee = 30 + 10 - 100*0.1
	assert.InDelta(t, 30.0, l.Fees().ServiceFee(), 1e-9)
}

func TestApplyTargetProfitCommandHandler_Handle_NoHistory(t *testing.T) {
	cmd, err := commands.NewApplyTargetProfitCommand(30)
	require.NoError(t, err)

	h := commands.NewApplyTargetProfitCommandHandler(ledger.NewLedger())
	require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrNoCompletedOrders)
}

func TestApplyTargetProfitCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewApplyTargetProfitCommandHandler(ledger.NewLedger())
	require.Error(t, h.Handle(t.Context(), commands.ApplyTargetProfitCommand{}))
}
