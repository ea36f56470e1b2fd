package partner

import (
	"testing"

	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with empty products", func(t *testing.T) {
		c, err := NewCustomer("T", true)

		require.NoError(t, err)
		assert.Equal(t, "T", c.Title)
		assert.True(t, c.IsDeleted)
		assert.NotNil(t, c.Products)
		assert.Empty(t, c.Products)
		assert.True(t, c.IsNew())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewCustomer("", false)

		assert.ErrorIs(t, err, shared.ErrInvalidArgument)
	})
}

func TestCustomer_SetTitle(t *testing.T) {
	c, err := NewCustomer("T", false)
	require.NoError(t, err)

	assert.ErrorIs(t, c.SetTitle("   "), shared.ErrInvalidArgument)
	assert.Equal(t, "T", c.Title)

	require.NoError(t, c.SetTitle("Renamed"))
	assert.Equal(t, "Renamed", c.Title)
}
