// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the collections table directly and return response
// DTOs, bypassing the domain aggregate.
package queries

import (
	"errors"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/guard"
)

var ErrGetCollectionsQueryIsNotConstructed = errors.New(
	"GetCollectionsQuery must be created via NewGetCollectionsQuery constructor",
)

// GetCollectionsQuery retrieves collection records, newest first, optionally
// filtered by status.
//
// Example:
//
//	query, err := NewGetCollectionsQuery("ready")
//	if err != nil {
//	    return err // unknown status value
//	}
//	records, err := handler.Handle(ctx, query)
type GetCollectionsQuery struct {
	statusFilter *collection.Status

	guard guard.ConstructorGuard
}

// NewGetCollectionsQuery creates a list query. An empty status means no
// filter; anything else must be one of the four canonical status names.
func NewGetCollectionsQuery(status string) (GetCollectionsQuery, error) {
	query := GetCollectionsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if status != "" {
		parsed, err := collection.StatusFromString(status)
		if err != nil {
			return GetCollectionsQuery{}, err
		}
		query.statusFilter = &parsed
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCollectionsQuery) Validate() error {
	return q.guard.Validate(ErrGetCollectionsQueryIsNotConstructed)
}

// StatusFilter returns the requested status filter, nil when unfiltered.
func (q GetCollectionsQuery) StatusFilter() *collection.Status {
	return q.statusFilter
}

// CollectionResponse is the read-model representation of a collection record.
type CollectionResponse struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Barcode       string
	OrderNumber   string
	Items         []collection.Item
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CollectedAt   *time.Time
}
