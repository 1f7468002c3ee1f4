// Package cleaningrepo provides the data transfer object and mapping
// functions for cleaning-job persistence, implementing the repository for
// the cleaning domain aggregate.
package cleaningrepo

import (
	"cleanings/internal/core/domain/model/cleaning"
)

// CleaningDTO represents the database structure for persisting cleaning
// jobs. A single flat table; the id is assigned by the database on insert.
type CleaningDTO struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"type:text;not null"`
	Description  *string `gorm:"type:text"`
	Price        float64 `gorm:"type:numeric;not null"`
	CleaningType string  `gorm:"type:text;not null"`
}

// TableName specifies the database table name for cleaning jobs.
// Overrides GORM's default naming convention to use "cleanings" instead of
// "cleaning_dtos".
func (CleaningDTO) TableName() string {
	return "cleanings"
}

// fromDomain converts a cleaning domain aggregate to its database
// representation.
func fromDomain(aggregate *cleaning.Cleaning) CleaningDTO {
	return CleaningDTO{
		ID:           aggregate.ID(),
		Name:         aggregate.Name(),
		Description:  aggregate.Description(),
		Price:        aggregate.Price(),
		CleaningType: aggregate.CleaningType().String(),
	}
}

// toDomain converts a database row back into a cleaning domain aggregate.
func toDomain(dto CleaningDTO) (*cleaning.Cleaning, error) {
	cleaningType, err := cleaning.ParseType(dto.CleaningType)
	if err != nil {
		return nil, err
	}

	return cleaning.RestoreCleaning(dto.ID, dto.Name, dto.Description, dto.Price, cleaningType)
}
