package commands

import (
	"context"
)

// DeleteCollectionCommandHandler removes a record from the store.
// The delete is unconditional; only an unknown ID is an error.
type DeleteCollectionCommandHandler struct {
	uowFactory CollectionUoWFactory
}

// NewDeleteCollectionCommandHandler creates a handler for record deletion.
func NewDeleteCollectionCommandHandler(uowFactory CollectionUoWFactory) DeleteCollectionCommandHandler {
	return DeleteCollectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the record with the command's ID.
func (h *DeleteCollectionCommandHandler) Handle(ctx context.Context, cmd DeleteCollectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CollectionRepository().Delete(ctx, cmd.CollectionID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
