package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderKey(t *testing.T) {
	t.Run("should create valid key with tenant and order id", func(t *testing.T) {
		key, err := kernel.NewOrderKey("LIMA_CENTRO", "abc-123")

		require.NoError(t, err)
		require.NoError(t, key.Validate())
		assert.Equal(t, "LIMA_CENTRO", key.TenantID())
		assert.Equal(t, "abc-123", key.OrderID())
	})

	t.Run("should fail with empty tenant id", func(t *testing.T) {
		_, err := kernel.NewOrderKey("", "abc-123")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "tenantID")
	})

	t.Run("should fail with empty order id", func(t *testing.T) {
		_, err := kernel.NewOrderKey("LIMA_CENTRO", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderID")
	})
}

func TestOrderKey_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var key kernel.OrderKey

		require.Error(t, key.Validate())
		assert.Equal(t, kernel.ErrOrderKeyIsNotConstructed, key.Validate())
	})
}

func TestOrderKey_String(t *testing.T) {
	t.Run("renders tenant slash order", func(t *testing.T) {
		key, _ := kernel.NewOrderKey("LIMA_CENTRO", "abc-123")

		assert.Equal(t, "LIMA_CENTRO/abc-123", key.String())
	})
}

func TestOrderKey_IsEqual(t *testing.T) {
	t.Run("equal keys compare equal", func(t *testing.T) {
		a, _ := kernel.NewOrderKey("T1", "o1")
		b, _ := kernel.NewOrderKey("T1", "o1")
		c, _ := kernel.NewOrderKey("T2", "o1")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
