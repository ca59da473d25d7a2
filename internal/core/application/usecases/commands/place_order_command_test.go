package commands_test

import (
	"testing"

	"github.com/ayobami7/click-and-collect-notif/internal/core/application/usecases/commands"
	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should create command with all fields", func(t *testing.T) {
		items := []collection.Item{{Name: "Oat milk", Quantity: 2}}

		cmd, err := commands.NewPlaceOrderCommand(
			"Jane Doe", "jane@example.com", "+44 1234 567890", "WEB-1234", items)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", cmd.CustomerName())
		assert.Equal(t, "jane@example.com", cmd.CustomerEmail())
		assert.Equal(t, "+44 1234 567890", cmd.CustomerPhone())
		assert.Equal(t, "WEB-1234", cmd.OrderNumber())
		assert.Equal(t, items, cmd.Items())
		require.NoError(t, cmd.Validate())
	})

	t.Run("should accept only the required name", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand("Jane Doe", "", "", "", nil)

		require.NoError(t, err)
		assert.Empty(t, cmd.OrderNumber())
		assert.Empty(t, cmd.Items())
	})

	t.Run("should reject missing customer name", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand("", "", "", "", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer name")
	})

	t.Run("should reject invalid item lines", func(t *testing.T) {
		testCases := []struct {
			name  string
			items []collection.Item
		}{
			{"item without name", []collection.Item{{Quantity: 1}}},
			{"item with zero quantity", []collection.Item{{Name: "Oat milk", Quantity: 0}}},
			{"item with negative quantity", []collection.Item{{Name: "Oat milk", Quantity: -1}}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := commands.NewPlaceOrderCommand("Jane Doe", "", "", "", tc.items)
				require.Error(t, err)
			})
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, err)
	})
}
