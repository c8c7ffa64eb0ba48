package commands_test

import (
	"testing"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, restaurantID, []string{"Pizza"}, []string{"Lunch Deal"})
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.Equal(t, []string{"Pizza"}, cmd.ItemNames())
	assert.Equal(t, []string{"Lunch Deal"}, cmd.MealNames())
}

func TestNewPlaceOrderCommand_EmptyContents(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderContentIsRequired)
}

func TestNewPlaceOrderCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), []string{"Pizza"}, nil)
	require.Error(t, err)

	_, err = commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), []string{"Pizza"}, nil)
	require.Error(t, err)

	_, err = commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, []string{"Pizza"}, nil)
	require.Error(t, err)
}
