package commands

import (
	"errors"

	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/guard"
)

var ErrMarkReadyCommandIsNotConstructed = errors.New(
	"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
)

// MarkReadyCommand represents a staff request to mark a pending order as
// prepared and ready for collection.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	collectionID int64

	guard guard.ConstructorGuard
}

// NewMarkReadyCommand creates a command to mark the order with the given
// store ID as ready. The ID must be positive.
func NewMarkReadyCommand(collectionID int64) (MarkReadyCommand, error) {
	if collectionID <= 0 {
		return MarkReadyCommand{}, errs.NewValueIsInvalidError("collection id")
	}

	return MarkReadyCommand{
		collectionID: collectionID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

// CollectionID returns the store identifier of the order to mark ready.
func (c MarkReadyCommand) CollectionID() int64 {
	return c.collectionID
}
