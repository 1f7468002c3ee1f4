package queries

import (
	"errors"

	"cleanings/internal/pkg/guard"
)

var (
	ErrGetCleaningByIDQueryIsNotConstructed = errors.New(
		"GetCleaningByIDQuery must be created via NewGetCleaningByIDQuery constructor",
	)
	ErrCleaningIDIsInvalid = errors.New("cleaning id must be greater than zero")
)

// GetCleaningByIDQuery retrieves a single cleaning job by its identifier.
type GetCleaningByIDQuery struct {
	cleaningID int64

	guard guard.ConstructorGuard
}

// NewGetCleaningByIDQuery creates a query for one cleaning job. Validates
// that the id is positive.
func NewGetCleaningByIDQuery(cleaningID int64) (GetCleaningByIDQuery, error) {
	if cleaningID < 1 {
		return GetCleaningByIDQuery{}, ErrCleaningIDIsInvalid
	}

	return GetCleaningByIDQuery{
		cleaningID: cleaningID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCleaningByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetCleaningByIDQueryIsNotConstructed)
}

// CleaningID returns the requested cleaning job id.
func (q GetCleaningByIDQuery) CleaningID() int64 {
	return q.cleaningID
}
