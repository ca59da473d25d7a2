package queries

import (
	"context"

	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCollectionQueryHandler retrieves one collection record by store ID.
type GetCollectionQueryHandler struct {
	db *gorm.DB
}

// NewGetCollectionQueryHandler creates a handler for single-record queries.
func NewGetCollectionQueryHandler(db *gorm.DB) GetCollectionQueryHandler {
	return GetCollectionQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when the ID
// matches nothing.
func (h GetCollectionQueryHandler) Handle(
	ctx context.Context,
	query GetCollectionQuery,
) (CollectionResponse, error) {
	if err := query.Validate(); err != nil {
		return CollectionResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_email,
			customer_phone,
			barcode,
			order_number,
			items,
			status,
			created_at,
			updated_at,
			collected_at
		FROM collections
		WHERE id = ?
	`, query.CollectionID()).Rows()
	if err != nil {
		return CollectionResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CollectionResponse{}, err
		}
		return CollectionResponse{}, errs.NewObjectNotFoundError("collection", query.CollectionID())
	}

	return scanCollectionRow(rows)
}
