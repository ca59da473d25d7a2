package commands

import (
	"context"
	"log/slog"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/core/ports"
)

// SubmitCollectionCommandHandler processes customer collection attempts.
//
// The flow is lookup by barcode, guard check, persist, then fan-out: only
// after the transition is committed does the handler publish new_collection
// to the connected staff subscribers. A guard violation performs no mutation
// and no notification.
//
// A customer name mismatch (case-insensitive) is logged but never blocks the
// transition. Barcode possession is treated as sufficient proof of identity;
// this low-friction policy is deliberate and must not be tightened into a
// hard rejection without a product decision.
type SubmitCollectionCommandHandler struct {
	uowFactory CollectionUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewSubmitCollectionCommandHandler creates a handler for collection attempts.
func NewSubmitCollectionCommandHandler(
	uowFactory CollectionUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) SubmitCollectionCommandHandler {
	return SubmitCollectionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "submit_collection_handler"),
	}
}

// Handle resolves the barcode, applies the submitCollection transition, and
// notifies staff. Returns the collected record on success.
func (h *SubmitCollectionCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitCollectionCommand,
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
	aggregate, err := repo.GetByBarcode(ctx, cmd.Barcode())
	if err != nil {
		return nil, err
	}

	nameMatches, err := aggregate.SubmitCollection(cmd.CustomerName())
	if err != nil {
		return nil, err
	}

	if !nameMatches {
		h.logger.WarnContext(ctx, "customer name mismatch on collection attempt",
			"collection_id", aggregate.ID(),
			"barcode", aggregate.Barcode().String(),
			"supplied_name", cmd.CustomerName(),
			"stored_name", aggregate.CustomerName(),
		)
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, ports.NewCollectionEvent(aggregate))

	return aggregate, nil
}
