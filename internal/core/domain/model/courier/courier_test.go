package courier_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid courier with all valid parameters", func(t *testing.T) {
		c, err := courier.NewCourier(validID, "tg:100500", "Alice", "+996700112233")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(validID))
		assert.Equal(t, "tg:100500", c.ExternalCode())
		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, "+996700112233", c.Phone())
		assert.False(t, c.IsBlocked())
	})

	t.Run("phone is optional", func(t *testing.T) {
		c, err := courier.NewCourier(validID, "tg:100500", "Alice", "")

		require.NoError(t, err)
		assert.Empty(t, c.Phone())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := courier.NewCourier(invalidID, "tg:100500", "Alice", "")

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should fail with empty external code", func(t *testing.T) {
		c, err := courier.NewCourier(validID, "", "Alice", "")

		require.ErrorIs(t, err, courier.ErrExternalCodeIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := courier.NewCourier(validID, "tg:100500", "", "")

		require.ErrorIs(t, err, courier.ErrNameIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := courier.NewCourier(invalidID, "", "", "")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "externalCode")
		assert.Contains(t, err.Error(), "name")
	})
}

func TestRestoreCourier(t *testing.T) {
	t.Run("should restore blocked flag", func(t *testing.T) {
		c, err := courier.RestoreCourier(kernel.NewUUID(), "tg:7", "Bob", "", true)

		require.NoError(t, err)
		assert.True(t, c.IsBlocked())
	})
}

func TestCourier_Validate(t *testing.T) {
	t.Run("should fail validation for nil courier", func(t *testing.T) {
		var c *courier.Courier

		require.Equal(t, courier.ErrCourierIsNotConstructed, c.Validate())
	})

	t.Run("should fail validation for zero value courier", func(t *testing.T) {
		var c courier.Courier

		require.Equal(t, courier.ErrCourierIsNotConstructed, c.Validate())
	})
}

func TestCourier_Blocking(t *testing.T) {
	t.Run("block and unblock toggle claim eligibility", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "tg:1", "Alice", "")
		require.NoError(t, err)

		c.Block()
		assert.True(t, c.IsBlocked())

		c.Unblock()
		assert.False(t, c.IsBlocked())
	})
}

func TestCourier_IsEqual(t *testing.T) {
	id := kernel.NewUUID()

	c1, _ := courier.NewCourier(id, "tg:1", "Alice", "")
	c2, _ := courier.NewCourier(id, "tg:2", "Other", "")
	c3, _ := courier.NewCourier(kernel.NewUUID(), "tg:1", "Alice", "")

	assert.True(t, c1.IsEqual(c2))
	assert.False(t, c1.IsEqual(c3))
	assert.False(t, c1.IsEqual(nil))
}
