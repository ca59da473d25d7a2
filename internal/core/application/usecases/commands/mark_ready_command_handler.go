package commands

import (
	"context"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
)

// MarkReadyCommandHandler transitions an order from Pending to Ready.
// The transition publishes no event: staff initiated it themselves, so there
// is nothing to notify them about.
type MarkReadyCommandHandler struct {
	uowFactory CollectionUoWFactory
}

// NewMarkReadyCommandHandler creates a handler for the mark-ready operation.
func NewMarkReadyCommandHandler(uowFactory CollectionUoWFactory) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the Pending -> Ready transition, and
// persists the result. Returns the updated record on success; a guard
// violation performs no mutation.
func (h *MarkReadyCommandHandler) Handle(ctx context.Context, cmd MarkReadyCommand) (*collection.Collection, error) {
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

	if err = aggregate.MarkReady(); err != nil {
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
