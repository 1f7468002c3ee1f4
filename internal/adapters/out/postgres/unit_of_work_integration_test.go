package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "cleanings/internal/adapters/out/postgres"
	"cleanings/internal/adapters/out/postgres/cleaningrepo"
	"cleanings/internal/adapters/out/postgres/migrations"
	"cleanings/internal/core/domain/model/cleaning"
	"cleanings/internal/core/ports"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	sqlDB, err := db.DB()
	suite.Require().NoError(err)

	_, err = migrations.Apply(sqlDB)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE cleanings RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.CleaningRepository())
	suite.NotNil(uow2.CleaningRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Repeated begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackWithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Rollback(ctx)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	aggregate, err := cleaning.NewCleaning("Committed job", nil, 10, cleaning.SpotClean)
	suite.Require().NoError(err)

	created, err := uow.CleaningRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := cleaningrepo.NewGormCleaningRepository(suite.db).Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal("Committed job", retrieved.Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	aggregate, err := cleaning.NewCleaning("Discarded job", nil, 10, cleaning.SpotClean)
	suite.Require().NoError(err)

	_, err = uow.CleaningRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	err = suite.db.Model(&cleaningrepo.CleaningDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Zero(count)
}

// TestConcurrentUpdates_SerializeOnRowLock verifies that two units of work
// mutating the same row via GetForUpdate do not interleave: the second
// fetch blocks until the first transaction commits, so the second update
// observes the first one's result.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentUpdates_SerializeOnRowLock() {
	ctx := context.Background()

	aggregate, err := cleaning.NewCleaning("Contended job", nil, 10, cleaning.SpotClean)
	suite.Require().NoError(err)

	created, err := cleaningrepo.NewGormCleaningRepository(suite.db).Add(ctx, aggregate)
	suite.Require().NoError(err)

	firstHoldsLock := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))

		repo := uow.CleaningRepository()
		locked, lockErr := repo.GetForUpdate(ctx, created.ID())
		suite.Require().NoError(lockErr)

		close(firstHoldsLock)
		time.Sleep(200 * time.Millisecond)

		patch := cleaning.Patch{Name: nullable.NewNullableWithValue("First writer")}
		suite.Require().NoError(locked.ApplyPatch(patch))
		suite.Require().NoError(repo.Update(ctx, locked))
		suite.Require().NoError(uow.Commit(ctx))
	}()

	go func() {
		defer wg.Done()

		<-firstHoldsLock

		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		repo := uow.CleaningRepository()
		locked, lockErr := repo.GetForUpdate(ctx, created.ID())
		suite.Require().NoError(lockErr)

		// The first writer committed before this fetch returned.
		suite.Equal("First writer", locked.Name())

		patch := cleaning.Patch{Price: nullable.NewNullableWithValue(99.99)}
		suite.Require().NoError(locked.ApplyPatch(patch))
		suite.Require().NoError(repo.Update(ctx, locked))
		suite.Require().NoError(uow.Commit(ctx))
	}()

	wg.Wait()

	final, err := cleaningrepo.NewGormCleaningRepository(suite.db).Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal("First writer", final.Name())
	suite.InDelta(99.99, final.Price(), 0.0001)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
