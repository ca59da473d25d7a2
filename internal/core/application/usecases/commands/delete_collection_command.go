package commands

import (
	"errors"

	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/guard"
)

var ErrDeleteCollectionCommandIsNotConstructed = errors.New(
	"DeleteCollectionCommand must be created via NewDeleteCollectionCommand constructor",
)

// DeleteCollectionCommand represents the administrative removal of a record.
// Deletion is unconditional: it is not gated by status.
type DeleteCollectionCommand struct { //nolint:recvcheck //using for validation
	collectionID int64

	guard guard.ConstructorGuard
}

// NewDeleteCollectionCommand creates a command to delete the record with the
// given store ID.
func NewDeleteCollectionCommand(collectionID int64) (DeleteCollectionCommand, error) {
	if collectionID <= 0 {
		return DeleteCollectionCommand{}, errs.NewValueIsInvalidError("collection id")
	}

	return DeleteCollectionCommand{
		collectionID: collectionID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCollectionCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCollectionCommandIsNotConstructed)
}

// CollectionID returns the store identifier of the record to delete.
func (c DeleteCollectionCommand) CollectionID() int64 {
	return c.collectionID
}
