package commands

import (
	"context"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
)

// CancelCollectionCommandHandler applies the administrative cancellation
// action. Cancellation emits no staff notification: the waiting display only
// tracks customers who are physically present.
type CancelCollectionCommandHandler struct {
	uowFactory CollectionUoWFactory
}

// NewCancelCollectionCommandHandler creates a handler for administrative
// cancellation.
func NewCancelCollectionCommandHandler(uowFactory CollectionUoWFactory) CancelCollectionCommandHandler {
	return CancelCollectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, moves it to Cancelled, and persists the result.
// Returns the updated record.
func (h *CancelCollectionCommandHandler) Handle(
	ctx context.Context,
	cmd CancelCollectionCommand,
) (*collection.Collection, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CollectionRepository()
	aggregate, err := repo.Get(ctx, cmd.CollectionID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
