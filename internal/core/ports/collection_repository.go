package ports

import (
	"context"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/kernel"
)

// CollectionRepository defines the persistence contract for collection
// aggregates. All operations are durable and individually atomic; the core
// never requires cross-record transactions.
type CollectionRepository interface {
	// Add persists a new collection aggregate and assigns its store ID.
	// Returns an ObjectAlreadyExistsError if the barcode is already taken.
	Add(ctx context.Context, aggregate *collection.Collection) error

	// Update persists changes to an existing collection aggregate.
	// Returns an ObjectNotFoundError if the aggregate's ID is absent.
	Update(ctx context.Context, aggregate *collection.Collection) error

	// Get retrieves a collection by its store identifier.
	Get(ctx context.Context, id int64) (*collection.Collection, error)

	// GetByBarcode retrieves a collection by its barcode, the sole lookup
	// key used during a collection attempt.
	GetByBarcode(ctx context.Context, barcode kernel.Barcode) (*collection.Collection, error)

	// Delete removes a collection unconditionally, regardless of status.
	// Returns an ObjectNotFoundError if the ID is absent.
	Delete(ctx context.Context, id int64) error

	// GetAll retrieves collections ordered newest createdAt first,
	// optionally filtered by status (nil means no filter).
	GetAll(ctx context.Context, statusFilter *collection.Status) ([]*collection.Collection, error)

	// DeleteTerminalOlderThan removes Collected and Cancelled records whose
	// last update is older than the given cutoff, returning how many were
	// removed. Used by the retention job.
	DeleteTerminalOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
