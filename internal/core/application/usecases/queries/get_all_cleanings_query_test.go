package queries_test

import (
	"testing"

	"cleanings/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllCleaningsQuery(t *testing.T) {
	// Act
	query := queries.NewGetAllCleaningsQuery()

	// Assert
	assert.NoError(t, query.Validate())
}

func TestGetAllCleaningsQuery_Validate_ZeroValue(t *testing.T) {
	// Arrange
	var query queries.GetAllCleaningsQuery

	// Act
	err := query.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetAllCleaningsQueryIsNotConstructed)
}
