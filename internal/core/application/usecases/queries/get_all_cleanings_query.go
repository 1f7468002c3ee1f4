// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries go straight to the database and return read models, bypassing the
// domain aggregate.
package queries

import (
	"errors"

	"cleanings/internal/pkg/guard"
)

var ErrGetAllCleaningsQueryIsNotConstructed = errors.New(
	"GetAllCleaningsQuery must be created via NewGetAllCleaningsQuery constructor",
)

// GetAllCleaningsQuery retrieves every cleaning job. The read is unfiltered
// and unpaginated, and carries no ORDER BY — callers must not assume any
// ordering.
type GetAllCleaningsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCleaningsQuery creates a parameterless query fetching the complete
// cleaning-job list.
func NewGetAllCleaningsQuery() GetAllCleaningsQuery {
	return GetAllCleaningsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCleaningsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCleaningsQueryIsNotConstructed)
}

// CleaningResponse represents a cleaning job in the read model.
type CleaningResponse struct {
	ID           int64
	Name         string
	Description  *string
	Price        float64
	CleaningType string
}
