package commands

import (
	"errors"

	"cleanings/internal/core/domain/model/cleaning"
	"cleanings/internal/pkg/guard"
)

var (
	ErrCreateCleaningCommandIsNotConstructed = errors.New(
		"CreateCleaningCommand must be created via NewCreateCleaningCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateCleaningCommand represents a request to register a new cleaning job.
// Name and price are required; description is optional; an unset cleaning
// type resolves to the default.
type CreateCleaningCommand struct { //nolint:recvcheck //using for validation
	name         string
	description  *string
	price        float64
	cleaningType cleaning.Type

	guard guard.ConstructorGuard
}

// NewCreateCleaningCommand creates a command to register a new cleaning job.
// Validates that name is not empty and that the cleaning type, when set, is
// one of the valid variants. An empty cleaningType resolves to
// cleaning.DefaultType.
func NewCreateCleaningCommand(
	name string,
	description *string,
	price float64,
	cleaningType cleaning.Type,
) (CreateCleaningCommand, error) {
	command := CreateCleaningCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setDescription(description),
		command.setPrice(price),
		command.setCleaningType(cleaningType),
	); err != nil {
		return CreateCleaningCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCleaningCommand) Validate() error {
	return c.guard.Validate(ErrCreateCleaningCommandIsNotConstructed)
}

// Name returns the cleaning job name from the command.
func (c CreateCleaningCommand) Name() string {
	return c.name
}

// Description returns the optional description from the command.
func (c CreateCleaningCommand) Description() *string {
	return c.description
}

// Price returns the hourly rate from the command.
func (c CreateCleaningCommand) Price() float64 {
	return c.price
}

// CleaningType returns the resolved cleaning type from the command.
func (c CreateCleaningCommand) CleaningType() cleaning.Type {
	return c.cleaningType
}

func (c *CreateCleaningCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCleaningCommand) setDescription(description *string) error {
	c.description = description
	return nil
}

func (c *CreateCleaningCommand) setPrice(price float64) error {
	c.price = price
	return nil
}

func (c *CreateCleaningCommand) setCleaningType(t cleaning.Type) error {
	if t == "" {
		t = cleaning.DefaultType
	}
	if err := t.Validate(); err != nil {
		return err
	}

	c.cleaningType = t
	return nil
}
