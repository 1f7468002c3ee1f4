// Package ports defines the outbound interfaces of the application core.
// Adapters implement these against concrete infrastructure.
package ports

import (
	"context"

	"cleanings/internal/core/domain/model/cleaning"
)

// CleaningRepository persists cleaning-job aggregates.
//
// Absence is an expected outcome, not a fault: lookups for an id with no
// matching row return an error wrapping errs.ErrObjectNotFound so callers can
// classify it with errors.Is.
type CleaningRepository interface {
	// Add inserts a new cleaning job and returns the stored aggregate,
	// including the database-assigned id.
	Add(ctx context.Context, aggregate *cleaning.Cleaning) (*cleaning.Cleaning, error)

	// Get retrieves a cleaning job by id.
	Get(ctx context.Context, id int64) (*cleaning.Cleaning, error)

	// GetForUpdate retrieves a cleaning job by id while taking a row-level
	// lock. Only meaningful inside a transaction; it keeps a concurrent
	// fetch-then-mutate sequence on the same row from interleaving.
	GetForUpdate(ctx context.Context, id int64) (*cleaning.Cleaning, error)

	// Update writes all attributes of an existing cleaning job, keyed by id.
	Update(ctx context.Context, aggregate *cleaning.Cleaning) error

	// Delete removes a cleaning job by id.
	Delete(ctx context.Context, id int64) error
}
