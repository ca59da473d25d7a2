package commands_test

import (
	"testing"

	"github.com/ayobami7/click-and-collect-notif/internal/core/application/usecases/commands"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitCollectionCommand(t *testing.T) {
	t.Run("should create command from a valid barcode", func(t *testing.T) {
		cmd, err := commands.NewSubmitCollectionCommand("Jane Doe", testBarcode)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", cmd.CustomerName())
		assert.Equal(t, testBarcode, cmd.Barcode().String())
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject missing customer name", func(t *testing.T) {
		_, err := commands.NewSubmitCollectionCommand("", testBarcode)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed barcodes before any lookup", func(t *testing.T) {
		malformed := []string{
			"not-a-barcode",
			"MNS-2025-A3X9K2",
			"MNS-20250115-TOOLONG7",
			"",
		}

		for _, barcode := range malformed {
			t.Run(barcode, func(t *testing.T) {
				_, err := commands.NewSubmitCollectionCommand("Jane Doe", barcode)
				require.Error(t, err)
			})
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.SubmitCollectionCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrSubmitCollectionCommandIsNotConstructed, err)
	})
}
