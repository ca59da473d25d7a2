package commands_test

import (
	"testing"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

const testBarcode = "MNS-20250115-A3X9K2"

func storedCollection(t *testing.T, id int64, status collection.Status) *collection.Collection {
	t.Helper()

	barcode, err := kernel.ParseBarcode(testBarcode)
	require.NoError(t, err)
	orderNumber, err := kernel.NewOrderNumber("ORD-1698234567-A3X9")
	require.NoError(t, err)

	now := time.Now()
	aggregate, err := collection.RestoreCollection(
		id,
		"Jane Doe",
		"jane@example.com",
		"",
		barcode,
		orderNumber,
		[]collection.Item{{Name: "Oat milk", Quantity: 2}},
		status,
		now.Add(-time.Hour),
		now.Add(-time.Hour),
		nil,
	)
	require.NoError(t, err)
	return aggregate
}
