package commands

import (
	"errors"

	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/guard"
)

var ErrCompleteCollectionCommandIsNotConstructed = errors.New(
	"CompleteCollectionCommand must be created via NewCompleteCollectionCommand constructor",
)

// CompleteCollectionCommand represents the administrative completion action:
// staff clear a customer from the waiting display and the order reaches its
// Collected terminal state.
type CompleteCollectionCommand struct { //nolint:recvcheck //using for validation
	collectionID int64

	guard guard.ConstructorGuard
}

// NewCompleteCollectionCommand creates a command to complete the order with
// the given store ID.
func NewCompleteCollectionCommand(collectionID int64) (CompleteCollectionCommand, error) {
	if collectionID <= 0 {
		return CompleteCollectionCommand{}, errs.NewValueIsInvalidError("collection id")
	}

	return CompleteCollectionCommand{
		collectionID: collectionID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteCollectionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteCollectionCommandIsNotConstructed)
}

// CollectionID returns the store identifier of the order to complete.
func (c CompleteCollectionCommand) CollectionID() int64 {
	return c.collectionID
}
