package order_test

import (
	"testing"

	"foodmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all lifecycle statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Created,
			order.Preparing,
			order.ReadyForDelivery,
			order.InDelivery,
			order.Delivered,
			order.Cancelled,
		} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return status names", func(t *testing.T) {
		assert.Equal(t, "Created", order.Created.String())
		assert.Equal(t, "Preparing", order.Preparing.String())
		assert.Equal(t, "ReadyForDelivery", order.ReadyForDelivery.String())
		assert.Equal(t, "InDelivery", order.InDelivery.String())
		assert.Equal(t, "Delivered", order.Delivered.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round trip valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Created,
			order.Preparing,
			order.ReadyForDelivery,
			order.InDelivery,
			order.Delivered,
			order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.Error(t, err)

		_, err = order.StatusFromString("Unknown")
		require.Error(t, err)
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("should walk the happy path", func(t *testing.T) {
		s := order.Created

		s, err := s.StartPreparing()
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, s)

		s, err = s.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.ReadyForDelivery, s)

		s, err = s.StartDelivery()
		require.NoError(t, err)
		assert.Equal(t, order.InDelivery, s)

		s, err = s.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, s)
		assert.True(t, s.IsFinal())
	})

	t.Run("should not skip preparation", func(t *testing.T) {
		_, err := order.Created.StartDelivery()
		require.Error(t, err)

		_, err = order.Created.Deliver()
		require.Error(t, err)

		_, err = order.Preparing.Deliver()
		require.Error(t, err)
	})

	t.Run("should not leave final states", func(t *testing.T) {
		_, err := order.Delivered.StartPreparing()
		require.Error(t, err)

		_, err = order.Cancelled.StartPreparing()
		require.Error(t, err)

		_, err = order.Delivered.Deliver()
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel before delivery starts", func(t *testing.T) {
		for _, s := range []order.Status{order.Created, order.Preparing, order.ReadyForDelivery} {
			cancelled, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Cancelled, cancelled)
		}
	})

	t.Run("should not cancel once delivery started", func(t *testing.T) {
		for _, s := range []order.Status{order.InDelivery, order.Delivered, order.Cancelled} {
			_, err := s.Cancel()
			require.Error(t, err, s.String())
		}
	})
}

func TestStatus_ValidateAssign(t *testing.T) {
	t.Run("should allow assignment before departure", func(t *testing.T) {
		require.NoError(t, order.Created.ValidateAssign())
		require.NoError(t, order.Preparing.ValidateAssign())
		require.NoError(t, order.ReadyForDelivery.ValidateAssign())
	})

	t.Run("should reject assignment after departure", func(t *testing.T) {
		require.Error(t, order.InDelivery.ValidateAssign())
		require.Error(t, order.Delivered.ValidateAssign())
		require.Error(t, order.Cancelled.ValidateAssign())
	})
}
