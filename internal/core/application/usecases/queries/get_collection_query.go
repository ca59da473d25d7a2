package queries

import (
	"errors"

	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/guard"
)

var ErrGetCollectionQueryIsNotConstructed = errors.New(
	"GetCollectionQuery must be created via NewGetCollectionQuery constructor",
)

// GetCollectionQuery retrieves a single collection record by its store ID.
type GetCollectionQuery struct {
	collectionID int64

	guard guard.ConstructorGuard
}

// NewGetCollectionQuery creates a single-record query. The ID must be
// positive.
func NewGetCollectionQuery(collectionID int64) (GetCollectionQuery, error) {
	if collectionID <= 0 {
		return GetCollectionQuery{}, errs.NewValueIsInvalidError("collection id")
	}

	return GetCollectionQuery{
		collectionID: collectionID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCollectionQuery) Validate() error {
	return q.guard.Validate(ErrGetCollectionQueryIsNotConstructed)
}

// CollectionID returns the requested store identifier.
func (q GetCollectionQuery) CollectionID() int64 {
	return q.collectionID
}
