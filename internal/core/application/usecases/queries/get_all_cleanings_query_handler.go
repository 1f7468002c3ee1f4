package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllCleaningsQueryHandler retrieves all cleaning jobs from the database.
// Uses direct SQL for the read side of the CQRS split.
type GetAllCleaningsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCleaningsQueryHandler creates a handler for the full-table read.
func NewGetAllCleaningsQueryHandler(db *gorm.DB) GetAllCleaningsQueryHandler {
	return GetAllCleaningsQueryHandler{db: db}
}

// Handle executes the query. Returns a possibly-empty slice; row order is
// whatever the storage engine produces.
func (h GetAllCleaningsQueryHandler) Handle(
	ctx context.Context,
	query GetAllCleaningsQuery,
) ([]CleaningResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cleanings := make([]CleaningResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			cleaning_type
		FROM cleanings
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c CleaningResponse

		if err = rows.Scan(&c.ID, &c.Name, &c.Description, &c.Price, &c.CleaningType); err != nil {
			return nil, err
		}

		cleanings = append(cleanings, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cleanings, nil
}
