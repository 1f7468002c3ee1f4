package commands

import (
	"errors"

	"cleanings/internal/core/domain/model/cleaning"
	"cleanings/internal/pkg/guard"
)

var (
	ErrUpdateCleaningCommandIsNotConstructed = errors.New(
		"UpdateCleaningCommand must be created via NewUpdateCleaningCommand constructor",
	)
	ErrCleaningIDIsInvalid = errors.New("cleaning id must be greater than zero")
)

// UpdateCleaningCommand represents a request to merge a partial update onto
// an existing cleaning job. The patch carries exclude-unset semantics:
// attributes absent from it keep their stored values.
type UpdateCleaningCommand struct { //nolint:recvcheck //using for validation
	cleaningID int64
	patch      cleaning.Patch

	guard guard.ConstructorGuard
}

// NewUpdateCleaningCommand creates a command to update a cleaning job by id.
// Validates that the id is positive; the patch itself may be empty, which
// leaves the record unchanged.
func NewUpdateCleaningCommand(cleaningID int64, patch cleaning.Patch) (UpdateCleaningCommand, error) {
	command := UpdateCleaningCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCleaningID(cleaningID); err != nil {
		return UpdateCleaningCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCleaningCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCleaningCommandIsNotConstructed)
}

// CleaningID returns the target cleaning job id.
func (c UpdateCleaningCommand) CleaningID() int64 {
	return c.cleaningID
}

// Patch returns the partial update to merge.
func (c UpdateCleaningCommand) Patch() cleaning.Patch {
	return c.patch
}

func (c *UpdateCleaningCommand) setCleaningID(id int64) error {
	if id < 1 {
		return ErrCleaningIDIsInvalid
	}

	c.cleaningID = id
	return nil
}
