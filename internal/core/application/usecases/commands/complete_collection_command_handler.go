package commands

import (
	"context"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/core/ports"
)

// CompleteCollectionCommandHandler applies the administrative completion
// action and publishes collection_completed to the connected staff
// subscribers once the transition is committed.
type CompleteCollectionCommandHandler struct {
	uowFactory CollectionUoWFactory
	publisher  ports.EventPublisher
}

// NewCompleteCollectionCommandHandler creates a handler for administrative
// completion.
func NewCompleteCollectionCommandHandler(
	uowFactory CollectionUoWFactory,
	publisher ports.EventPublisher,
) CompleteCollectionCommandHandler {
	return CompleteCollectionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order, moves it to the Collected terminal state (stamping
// collectedAt if the customer-facing flow had not), persists, and notifies
// staff. Returns the updated record.
func (h *CompleteCollectionCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteCollectionCommand,
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

	if err = aggregate.Complete(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, ports.NewCollectionCompletedEvent(aggregate))

	return aggregate, nil
}
