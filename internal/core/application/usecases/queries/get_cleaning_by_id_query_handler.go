package queries

import (
	"context"

	"cleanings/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCleaningByIDQueryHandler retrieves one cleaning job by primary key.
type GetCleaningByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCleaningByIDQueryHandler creates a handler for the single-row
// lookup.
func NewGetCleaningByIDQueryHandler(db *gorm.DB) GetCleaningByIDQueryHandler {
	return GetCleaningByIDQueryHandler{db: db}
}

// Handle executes the lookup. Absence is reported with an error wrapping
// errs.ErrObjectNotFound, not treated as a fault.
func (h GetCleaningByIDQueryHandler) Handle(
	ctx context.Context,
	query GetCleaningByIDQuery,
) (CleaningResponse, error) {
	if err := query.Validate(); err != nil {
		return CleaningResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			cleaning_type
		FROM cleanings
		WHERE id = ?
	`, query.CleaningID()).Rows()
	if err != nil {
		return CleaningResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CleaningResponse{}, err
		}
		return CleaningResponse{}, errs.NewObjectNotFoundError("cleaning_id", query.CleaningID())
	}

	var c CleaningResponse
	if err = rows.Scan(&c.ID, &c.Name, &c.Description, &c.Price, &c.CleaningType); err != nil {
		return CleaningResponse{}, err
	}

	return c, nil
}
