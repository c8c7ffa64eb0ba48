package commands_test

import (
	"testing"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterRestaurantCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterRestaurantCommand(id, "La Cantine", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.RestaurantID())
	assert.Equal(t, "La Cantine", cmd.Name())
}

func TestNewRegisterRestaurantCommand_EmptyName(t *testing.T) {
	_, err := commands.NewRegisterRestaurantCommand(kernel.NewUUID(), "", 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRestaurantNameIsRequired)
}

func TestRegisterRestaurantCommandHandler_Handle_Success(t *testing.T) {
	l := ledger.NewLedger()
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterRestaurantCommand(id, "La Cantine", 2, 3)
	require.NoError(t, err)

	h := commands.NewRegisterRestaurantCommandHandler(l)
	require.NoError(t, h.Handle(t.Context(), cmd))

	registered, err := l.RestaurantByID(id)
	require.NoError(t, err)
	assert.Equal(t, "La Cantine", registered.Name())
}

func TestRegisterRestaurantCommandHandler_Handle_Duplicate(t *testing.T) {
	l, _, rest, _ := marketLedger(t)
	cmd, err := commands.NewRegisterRestaurantCommand(rest.ID(), "Clone", 0, 0)
	require.NoError(t, err)

	h := commands.NewRegisterRestaurantCommandHandler(l)
	require.ErrorIs(t, h.Handle(t.Context(), cmd), ledger.ErrAlreadyRegistered)
}
