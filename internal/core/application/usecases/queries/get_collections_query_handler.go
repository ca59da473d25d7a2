package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"

	"gorm.io/gorm"
)

// GetCollectionsQueryHandler lists collection records from the database.
// Results are ordered newest createdAt first, matching the staff display.
type GetCollectionsQueryHandler struct {
	db *gorm.DB
}

// NewGetCollectionsQueryHandler creates a handler for list queries.
func NewGetCollectionsQueryHandler(db *gorm.DB) GetCollectionsQueryHandler {
	return GetCollectionsQueryHandler{db: db}
}

// Handle executes the list query, applying the status filter when present.
func (h GetCollectionsQueryHandler) Handle(
	ctx context.Context,
	query GetCollectionsQuery,
) ([]CollectionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
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
	`
	args := make([]any, 0, 1)
	if filter := query.StatusFilter(); filter != nil {
		sqlQuery += " WHERE status = ?"
		args = append(args, int(*filter))
	}
	sqlQuery += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]CollectionResponse, 0)
	for rows.Next() {
		response, scanErr := scanCollectionRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}

// scanCollectionRow maps one collections row onto the read model.
// Shared with the single-record query handler.
func scanCollectionRow(rows *sql.Rows) (CollectionResponse, error) {
	var (
		response    CollectionResponse
		itemsRaw    []byte
		status      int
		collectedAt sql.NullTime
	)

	if err := rows.Scan(
		&response.ID,
		&response.CustomerName,
		&response.CustomerEmail,
		&response.CustomerPhone,
		&response.Barcode,
		&response.OrderNumber,
		&itemsRaw,
		&status,
		&response.CreatedAt,
		&response.UpdatedAt,
		&collectedAt,
	); err != nil {
		return CollectionResponse{}, err
	}

	response.Status = collection.Status(status).String()
	if collectedAt.Valid {
		t := collectedAt.Time
		response.CollectedAt = &t
	}

	response.Items = make([]collection.Item, 0)
	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &response.Items); err != nil {
			return CollectionResponse{}, err
		}
	}

	return response, nil
}
