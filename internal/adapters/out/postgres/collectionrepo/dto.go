// Package collectionrepo provides the GORM-backed repository for collection
// aggregates, including the data transfer objects and mapping functions
// between the domain model and the relational schema.
package collectionrepo

import (
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/kernel"
)

// CollectionDTO is the database representation of a collection aggregate.
// The barcode carries a unique index: the store, not the generator, is the
// uniqueness source of truth. Timestamps are managed by the aggregate, so
// GORM's automatic tracking is disabled.
type CollectionDTO struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	CustomerName  string     `gorm:"size:255;not null;index"`
	CustomerEmail string     `gorm:"size:255"`
	CustomerPhone string     `gorm:"size:64"`
	Barcode       string     `gorm:"size:255;not null;uniqueIndex"`
	OrderNumber   string     `gorm:"size:255;not null"`
	Items         []ItemDTO  `gorm:"serializer:json;type:jsonb"`
	Status        int        `gorm:"index"`
	CreatedAt     time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime:false"`
	CollectedAt   *time.Time `gorm:""`
}

// TableName overrides GORM's default naming to use "collections".
func (CollectionDTO) TableName() string {
	return "collections"
}

// ItemDTO is one serialized item line inside the jsonb items column.
type ItemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// fromDomain converts a collection aggregate to its database representation.
func fromDomain(aggregate *collection.Collection) CollectionDTO {
	items := aggregate.Items()
	dtoItems := make([]ItemDTO, len(items))
	for i, item := range items {
		dtoItems[i] = ItemDTO{Name: item.Name, Quantity: item.Quantity}
	}

	return CollectionDTO{
		ID:            aggregate.ID(),
		CustomerName:  aggregate.CustomerName(),
		CustomerEmail: aggregate.CustomerEmail(),
		CustomerPhone: aggregate.CustomerPhone(),
		Barcode:       aggregate.Barcode().String(),
		OrderNumber:   aggregate.OrderNumber().String(),
		Items:         dtoItems,
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		CollectedAt:   aggregate.CollectedAt(),
	}
}

// toDomain reconstructs a collection aggregate from a database row.
func toDomain(dto CollectionDTO) (*collection.Collection, error) {
	barcode, err := kernel.ParseBarcode(dto.Barcode)
	if err != nil {
		return nil, err
	}

	orderNumber, err := kernel.NewOrderNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	items := make([]collection.Item, len(dto.Items))
	for i, item := range dto.Items {
		items[i] = collection.Item{Name: item.Name, Quantity: item.Quantity}
	}

	return collection.RestoreCollection(
		dto.ID,
		dto.CustomerName,
		dto.CustomerEmail,
		dto.CustomerPhone,
		barcode,
		orderNumber,
		items,
		collection.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.CollectedAt,
	)
}
