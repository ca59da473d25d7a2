package commands

import (
	"errors"

	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/guard"
)

var ErrCancelCollectionCommandIsNotConstructed = errors.New(
	"CancelCollectionCommand must be created via NewCancelCollectionCommand constructor",
)

// CancelCollectionCommand represents the explicit administrative cancellation
// of an order. Cancellation is never part of the customer-facing flow.
type CancelCollectionCommand struct { //nolint:recvcheck //using for validation
	collectionID int64

	guard guard.ConstructorGuard
}

// NewCancelCollectionCommand creates a command to cancel the order with the
// given store ID.
func NewCancelCollectionCommand(collectionID int64) (CancelCollectionCommand, error) {
	if collectionID <= 0 {
		return CancelCollectionCommand{}, errs.NewValueIsInvalidError("collection id")
	}

	return CancelCollectionCommand{
		collectionID: collectionID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelCollectionCommand) Validate() error {
	return c.guard.Validate(ErrCancelCollectionCommandIsNotConstructed)
}

// CollectionID returns the store identifier of the order to cancel.
func (c CancelCollectionCommand) CollectionID() int64 {
	return c.collectionID
}
