package collectionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/kernel"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCollectionRepository implements ports.CollectionRepository using GORM.
// The connection must be opened with TranslateError enabled so unique
// constraint violations surface as gorm.ErrDuplicatedKey.
type GormCollectionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates modified
// within the surrounding unit of work.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormCollectionRepository creates a new GORM collection repository.
func NewGormCollectionRepository(db *gorm.DB, tracker aggregateTracker) *GormCollectionRepository {
	return &GormCollectionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new collection and assigns the store-generated ID back to the
// aggregate. A duplicate barcode is reported as ObjectAlreadyExistsError.
func (r *GormCollectionRepository) Add(ctx context.Context, aggregate *collection.Collection) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("barcode", dto.Barcode, err)
		}
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing collection to the database.
func (r *GormCollectionRepository) Update(ctx context.Context, aggregate *collection.Collection) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CollectionDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("collection", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a collection by its store identifier.
func (r *GormCollectionRepository) Get(ctx context.Context, id int64) (*collection.Collection, error) {
	var dto CollectionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("collection", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByBarcode retrieves a collection by its barcode.
func (r *GormCollectionRepository) GetByBarcode(
	ctx context.Context,
	barcode kernel.Barcode,
) (*collection.Collection, error) {
	if err := barcode.Validate(); err != nil {
		return nil, err
	}

	var dto CollectionDTO
	if err := r.db.WithContext(ctx).First(&dto, "barcode = ?", barcode.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("barcode", barcode.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a collection unconditionally, regardless of its status.
func (r *GormCollectionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&CollectionDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("collection", id)
	}

	return nil
}

// GetAll retrieves collections ordered newest first, optionally filtered by
// status.
func (r *GormCollectionRepository) GetAll(
	ctx context.Context,
	statusFilter *collection.Status,
) ([]*collection.Collection, error) {
	tx := r.db.WithContext(ctx).Order("created_at DESC")
	if statusFilter != nil {
		tx = tx.Where("status = ?", int(*statusFilter))
	}

	var dtos []CollectionDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, err
	}

	collections := make([]*collection.Collection, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}

	return collections, nil
}

// DeleteTerminalOlderThan removes Collected and Cancelled records last
// updated before the cutoff.
func (r *GormCollectionRepository) DeleteTerminalOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status IN ? AND updated_at < ?",
			[]int{int(collection.Collected), int(collection.Cancelled)}, cutoff).
		Delete(&CollectionDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
