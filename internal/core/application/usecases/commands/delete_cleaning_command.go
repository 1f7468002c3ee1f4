package commands

import (
	"errors"

	"cleanings/internal/pkg/guard"
)

var ErrDeleteCleaningCommandIsNotConstructed = errors.New(
	"DeleteCleaningCommand must be created via NewDeleteCleaningCommand constructor",
)

// DeleteCleaningCommand represents a request to remove a cleaning job by id.
type DeleteCleaningCommand struct { //nolint:recvcheck //using for validation
	cleaningID int64

	guard guard.ConstructorGuard
}

// NewDeleteCleaningCommand creates a command to delete a cleaning job by id.
// Validates that the id is positive.
func NewDeleteCleaningCommand(cleaningID int64) (DeleteCleaningCommand, error) {
	command := DeleteCleaningCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCleaningID(cleaningID); err != nil {
		return DeleteCleaningCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCleaningCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCleaningCommandIsNotConstructed)
}

// CleaningID returns the target cleaning job id.
func (c DeleteCleaningCommand) CleaningID() int64 {
	return c.cleaningID
}

func (c *DeleteCleaningCommand) setCleaningID(id int64) error {
	if id < 1 {
		return ErrCleaningIDIsInvalid
	}

	c.cleaningID = id
	return nil
}
