// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"cleanings/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Update and delete are read-modify-write sequences; running both
// halves inside one transaction keeps concurrent operations on the same row
// from interleaving.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CleaningRepoFactory provides access to the cleaning repository within
	// a transaction.
	CleaningRepoFactory interface {
		CleaningRepository() ports.CleaningRepository
	}

	// CleaningUoW manages transactions for cleaning-job operations.
	CleaningUoW interface {
		TxManager
		CleaningRepoFactory
	}

	// CleaningUoWFactory creates new cleaning unit of work instances.
	CleaningUoWFactory interface {
		Create() CleaningUoW
	}
)
