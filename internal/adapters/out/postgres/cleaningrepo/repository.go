package cleaningrepo

import (
	"context"
	"errors"

	"cleanings/internal/core/domain/model/cleaning"
	"cleanings/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCleaningRepository implements ports.CleaningRepository using GORM.
// The repository is stateless aside from the shared database handle, so
// instances may be constructed freely per operation.
type GormCleaningRepository struct {
	db *gorm.DB
}

// NewGormCleaningRepository creates a new GORM cleaning repository bound to
// db, which may be a plain connection or a running transaction.
func NewGormCleaningRepository(db *gorm.DB) *GormCleaningRepository {
	return &GormCleaningRepository{db: db}
}

// Add inserts a new cleaning job and returns the stored aggregate with its
// database-assigned id.
func (r *GormCleaningRepository) Add(ctx context.Context, aggregate *cleaning.Cleaning) (*cleaning.Cleaning, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Get retrieves a cleaning job by id. Absence yields an error wrapping
// errs.ErrObjectNotFound.
func (r *GormCleaningRepository) Get(ctx context.Context, id int64) (*cleaning.Cleaning, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a cleaning job by id with a SELECT ... FOR UPDATE
// row lock. Meaningful only inside a transaction, where it serializes
// concurrent fetch-then-mutate sequences on the same row.
func (r *GormCleaningRepository) GetForUpdate(ctx context.Context, id int64) (*cleaning.Cleaning, error) {
	return r.get(ctx, id, true)
}

func (r *GormCleaningRepository) get(ctx context.Context, id int64, forUpdate bool) (*cleaning.Cleaning, error) {
	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto CleaningDTO
	if err := tx.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cleaning_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update writes all attributes of an existing cleaning job, keyed by id.
func (r *GormCleaningRepository) Update(ctx context.Context, aggregate *cleaning.Cleaning) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// A map update writes every column, including description going to NULL,
	// and never falls back to an insert when the row is gone.
	result := r.db.WithContext(ctx).Model(&CleaningDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":          dto.Name,
		"description":   dto.Description,
		"price":         dto.Price,
		"cleaning_type": dto.CleaningType,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cleaning_id", aggregate.ID())
	}

	return nil
}

// Delete removes a cleaning job by id. Deleting an id with no matching row
// yields an error wrapping errs.ErrObjectNotFound.
func (r *GormCleaningRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&CleaningDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cleaning_id", id)
	}

	return nil
}
