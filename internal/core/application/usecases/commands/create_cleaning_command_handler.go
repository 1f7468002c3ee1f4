package commands

import (
	"context"

	"cleanings/internal/core/domain/model/cleaning"
)

// CreateCleaningCommandHandler handles the business logic for registering a
// new cleaning job: it builds the aggregate and persists it within a
// transaction, returning the stored record with its database-assigned id.
type CreateCleaningCommandHandler struct {
	uowFactory CleaningUoWFactory
}

// NewCreateCleaningCommandHandler creates a handler for cleaning-job
// registration.
func NewCreateCleaningCommandHandler(uowFactory CleaningUoWFactory) CreateCleaningCommandHandler {
	return CreateCleaningCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command. Rolls back automatically on any
// error to prevent partial data.
func (h *CreateCleaningCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCleaningCommand,
) (*cleaning.Cleaning, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := cleaning.NewCleaning(cmd.Name(), cmd.Description(), cmd.Price(), cmd.CleaningType())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := uow.CleaningRepository().Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
