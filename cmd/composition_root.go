package cmd

import (
	"cleanings/internal/adapters/out/postgres"
	"cleanings/internal/core/application/usecases/commands"
	"cleanings/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateCleaningCommandHandler() commands.CreateCleaningCommandHandler {
	return commands.NewCreateCleaningCommandHandler(c.cleaningUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCleaningCommandHandler() commands.UpdateCleaningCommandHandler {
	return commands.NewUpdateCleaningCommandHandler(c.cleaningUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCleaningCommandHandler() commands.DeleteCleaningCommandHandler {
	return commands.NewDeleteCleaningCommandHandler(c.cleaningUoWFactory())
}

func (c *CompositionRoot) CreateGetAllCleaningsQueryHandler() queries.GetAllCleaningsQueryHandler {
	return queries.NewGetAllCleaningsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCleaningByIDQueryHandler() queries.GetCleaningByIDQueryHandler {
	return queries.NewGetCleaningByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) cleaningUoWFactory() commands.CleaningUoWFactory {
	return FuncCleaningUoWFactory(func() commands.CleaningUoW {
		return c.uowFactory.Create()
	})
}

type FuncCleaningUoWFactory func() commands.CleaningUoW

func (f FuncCleaningUoWFactory) Create() commands.CleaningUoW {
	return f()
}
