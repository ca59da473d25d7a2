package commands

import (
	"context"
	"time"
)

// PurgeExpiredCollectionsCommandHandler deletes terminal records past their
// retention window in a single transaction and reports how many were removed.
type PurgeExpiredCollectionsCommandHandler struct {
	uowFactory CollectionUoWFactory
}

// NewPurgeExpiredCollectionsCommandHandler creates a handler for the purge
// operation.
func NewPurgeExpiredCollectionsCommandHandler(uowFactory CollectionUoWFactory) PurgeExpiredCollectionsCommandHandler {
	return PurgeExpiredCollectionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes Collected and Cancelled records last updated before
// now minus the retention window. Returns the number of removed records.
func (h *PurgeExpiredCollectionsCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeExpiredCollectionsCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-cmd.Retention())
	purged, err := uow.CollectionRepository().DeleteTerminalOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
