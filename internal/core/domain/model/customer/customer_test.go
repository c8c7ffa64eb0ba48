package customer_test

import (
	"testing"

	"foodmarket/internal/core/domain/model/customer"
	"foodmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	location, err := kernel.NewCoordinate(2, 3)
	require.NoError(t, err)

	c, err := customer.NewCustomer(kernel.NewUUID(), "Test Customer", location)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create customer with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		location, err := kernel.NewCoordinate(2, 3)
		require.NoError(t, err)

		c, err := customer.NewCustomer(id, "Alice", location)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, location, c.Location())
	})

	t.Run("should start on basic card without points or notifications", func(t *testing.T) {
		c := createValidCustomer(t)

		assert.Equal(t, customer.CardTypeBasic, c.Card().Type())
		assert.Equal(t, 0, c.Points())
		assert.False(t, c.NotificationsEnabled())
		assert.Empty(t, c.Notifications())
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		location, err := kernel.NewCoordinate(2, 3)
		require.NoError(t, err)

		c, err := customer.NewCustomer(kernel.NewUUID(), "", location)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), customer.ErrNameIsRequired.Error())
	})

	t.Run("should return error for invalid UUID and location", func(t *testing.T) {
		var invalidID kernel.UUID
		var location kernel.Coordinate

		c, err := customer.NewCustomer(invalidID, "Alice", location)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})
}

func TestRestoreCustomer(t *testing.T) {
	t.Run("should restore customer with persisted state", func(t *testing.T) {
		location, err := kernel.NewCoordinate(2, 3)
		require.NoError(t, err)

		c, err := customer.RestoreCustomer(
			kernel.NewUUID(), "Alice", location, customer.NewPointsCard(), 42, true)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, customer.CardTypePoints, c.Card().Type())
		assert.Equal(t, 42, c.Points())
		assert.True(t, c.NotificationsEnabled())
	})

	t.Run("should reject nil card", func(t *testing.T) {
		location, err := kernel.NewCoordinate(2, 3)
		require.NoError(t, err)

		_, err = customer.RestoreCustomer(kernel.NewUUID(), "Alice", location, nil, 0, false)

		require.Error(t, err)
		assert.Contains(t, err.Error(), customer.ErrCardIsRequired.Error())
	})

	t.Run("should reject negative points", func(t *testing.T) {
		location, err := kernel.NewCoordinate(2, 3)
		require.NoError(t, err)

		_, err = customer.RestoreCustomer(
			kernel.NewUUID(), "Alice", location, customer.NewBasicCard(), -1, false)

		require.Error(t, err)
		assert.Contains(t, err.Error(), customer.ErrPointsAreInvalid.Error())
	})
}

func TestCustomer_SwitchCard(t *testing.T) {
	t.Run("should forfeit points on switch", func(t *testing.T) {
		c := createValidCustomer(t)
		require.NoError(t, c.SwitchCard(customer.NewPointsCard()))

		// Accumulate some points
		_, err := c.ApplyFidelityDiscount(500)
		require.NoError(t, err)
		require.Equal(t, 50, c.Points())

		require.NoError(t, c.SwitchCard(customer.NewLotteryCard()))

		assert.Equal(t, 0, c.Points())
		assert.Equal(t, customer.CardTypeLottery, c.Card().Type())
	})

	t.Run("should reject nil card", func(t *testing.T) {
		c := createValidCustomer(t)

		err := c.SwitchCard(nil)

		require.Error(t, err)
		assert.Equal(t, customer.CardTypeBasic, c.Card().Type())
	})
}

func TestCustomer_Notifications(t *testing.T) {
	t.Run("should toggle subscription", func(t *testing.T) {
		c := createValidCustomer(t)

		c.EnableNotifications()
		assert.True(t, c.NotificationsEnabled())

		c.DisableNotifications()
		assert.False(t, c.NotificationsEnabled())
	})

	t.Run("should record messages in order", func(t *testing.T) {
		c := createValidCustomer(t)

		c.Notify("first offer")
		c.Notify("second offer")

		assert.Equal(t, []string{"first offer", "second offer"}, c.Notifications())
	})

	t.Run("should return a defensive copy", func(t *testing.T) {
		c := createValidCustomer(t)
		c.Notify("offer")

		messages := c.Notifications()
		messages[0] = "changed"

		assert.Equal(t, []string{"offer"}, c.Notifications())
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("should fail validation for zero value and nil", func(t *testing.T) {
		var zero customer.Customer
		require.Error(t, zero.Validate())

		var nilCustomer *customer.Customer
		require.Error(t, nilCustomer.Validate())
	})
}

func TestCustomer_IsEqual(t *testing.T) {
	t.Run("should compare by identifier", func(t *testing.T) {
		location, err := kernel.NewCoordinate(2, 3)
		require.NoError(t, err)
		id := kernel.NewUUID()

		first, err := customer.NewCustomer(id, "Alice", location)
		require.NoError(t, err)
		second, err := customer.NewCustomer(id, "Bob", location)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(createValidCustomer(t)))
		assert.False(t, first.IsEqual(nil))
	})
}
