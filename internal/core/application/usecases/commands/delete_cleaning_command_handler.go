package commands

import (
	"context"
)

// DeleteCleaningCommandHandler handles the removal of cleaning jobs.
//
// Deletion uses the same fetch-then-mutate pattern as update, inside one
// transaction with a row lock: the fetch distinguishes not-found from a
// delete that is rejected for another reason, and the lock keeps a
// concurrent update on the same row from interleaving.
type DeleteCleaningCommandHandler struct {
	uowFactory CleaningUoWFactory
}

// NewDeleteCleaningCommandHandler creates a handler for cleaning-job
// deletion.
func NewDeleteCleaningCommandHandler(uowFactory CleaningUoWFactory) DeleteCleaningCommandHandler {
	return DeleteCleaningCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command. When no row matches the id, the
// not-found error propagates and no write is attempted.
func (h *DeleteCleaningCommandHandler) Handle(ctx context.Context, cmd DeleteCleaningCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CleaningRepository()

	if _, err := repo.GetForUpdate(ctx, cmd.CleaningID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.CleaningID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
