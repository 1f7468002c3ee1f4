package commands

import (
	"context"

	"cleanings/internal/core/domain/model/cleaning"
)

// UpdateCleaningCommandHandler handles partial updates of cleaning jobs.
//
// The fetch, the in-memory merge and the conditional write all run inside a
// single transaction, with the fetch taking a row-level lock. Two concurrent
// updates of the same job therefore serialize instead of racing each other's
// read state.
type UpdateCleaningCommandHandler struct {
	uowFactory CleaningUoWFactory
}

// NewUpdateCleaningCommandHandler creates a handler for cleaning-job updates.
func NewUpdateCleaningCommandHandler(uowFactory CleaningUoWFactory) UpdateCleaningCommandHandler {
	return UpdateCleaningCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
//
// When no row matches the id, the not-found error propagates and no write is
// attempted. A merge that would null out a required attribute fails before
// the write with the stored record unchanged. On success the merged record
// is persisted and returned.
func (h *UpdateCleaningCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCleaningCommand,
) (*cleaning.Cleaning, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CleaningRepository()

	aggregate, err := repo.GetForUpdate(ctx, cmd.CleaningID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ApplyPatch(cmd.Patch()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
