package cleaningrepo_test

import (
	"context"
	"testing"
	"time"

	"cleanings/internal/adapters/out/postgres/cleaningrepo"
	"cleanings/internal/adapters/out/postgres/migrations"
	"cleanings/internal/core/domain/model/cleaning"
	"cleanings/internal/pkg/errs"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CleaningRepositoryIntegrationTestSuite provides integration tests for
// CleaningRepository using PostgreSQL containers to verify persistence
// behavior.
type CleaningRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cleaningrepo.GormCleaningRepository
}

func (suite *CleaningRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Apply schema migrations
	sqlDB, err := db.DB()
	suite.Require().NoError(err)

	_, err = migrations.Apply(sqlDB)
	suite.Require().NoError(err)

	suite.repository = cleaningrepo.NewGormCleaningRepository(db)
}

func (suite *CleaningRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE cleanings RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *CleaningRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CleaningRepositoryIntegrationTestSuite) TestAdd_AssignsID() {
	ctx := context.Background()
	description := "All surfaces, all rooms"

	aggregate, err := cleaning.NewCleaning("Full apartment clean", &description, 79.99, cleaning.FullClean)
	suite.Require().NoError(err)

	created, err := suite.repository.Add(ctx, aggregate)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Positive(created.ID())
	suite.Equal("Full apartment clean", created.Name())
	suite.Require().NotNil(created.Description())
	suite.Equal(description, *created.Description())
	suite.InDelta(79.99, created.Price(), 0.0001)
	suite.Equal(cleaning.FullClean, created.CleaningType())
	suite.assertCleaningCount(1)
}

func (suite *CleaningRepositoryIntegrationTestSuite) TestAdd_SequentialIDs() {
	first := suite.addCleaning("First job", 10)
	second := suite.addCleaning("Second job", 20)

	suite.Equal(first.ID()+1, second.ID())
}

func (suite *CleaningRepositoryIntegrationTestSuite) TestGet_ExistingCleaning() {
	ctx := context.Background()
	created := suite.addCleaning("Spot treatment", 19.99)

	retrieved, err := suite.repository.Get(ctx, created.ID())

	suite.Require().NoError(err)
	suite.True(created.IsEqual(retrieved))
	suite.Equal(created.Name(), retrieved.Name())
	suite.Nil(retrieved.Description())
	suite.InDelta(created.Price(), retrieved.Price(), 0.0001)
	suite.Equal(created.CleaningType(), retrieved.CleaningType())
}

func (suite *CleaningRepositoryIntegrationTestSuite) TestGet_MissingCleaning_ReturnsNotFound() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 50000)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(retrieved)
}

func (suite *CleaningRepositoryIntegrationTestSuite) TestGetForUpdate_ExistingCleaning() {
	ctx := context.Background()
	created := suite.addCleaning("Quick dusting", 9.99)

	retrieved, err := suite.repository.GetForUpdate(ctx, created.ID())

	suite.Require().NoError(err)
	suite.True(created.IsEqual(retrieved))
}

func (suite *CleaningRepositoryIntegrationTestSuite) TestUpdate_PersistsMergedState() {
	ctx := context.Background()
	created := suite.addCleaning("Spot treatment", 19.99)

	patch := cleaning.Patch{
		Price: nullable.NewNullableWithValue(3.14),
	}
	suite.Require().NoError(created.ApplyPatch(patch))

	err := suite.repository.Update(ctx, created)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.InDelta(3.14, retrieved.Price(), 0.0001)
	suite.Equal("Spot treatment", retrieved.Name())
	suite.Equal(cleaning.SpotClean, retrieved.CleaningType())
}

func (suite *CleaningRepositoryIntegrationTestSuite) TestUpdate_NullsOutDescription() {
	ctx := context.Background()
	description := "To be removed"

	aggregate, err := cleaning.NewCleaning("Described job", &description, 15, cleaning.SpotClean)
	suite.Require().NoError(err)

	created, err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	patch := cleaning.Patch{
		Description: nullable.NewNullNullable[string](),
	}
	suite.Require().NoError(created.ApplyPatch(patch))

	suite.Require().NoError(suite.repository.Update(ctx, created))

	retrieved, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.Description())
}

func (suite *CleaningRepositoryIntegrationTestSuite) TestUpdate_MissingCleaning_ReturnsNotFound() {
	ctx := context.Background()

	phantom, err := cleaning.RestoreCleaning(50000, "Phantom job", nil, 10, cleaning.DustUp)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, phantom)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertCleaningCount(0)
}

func (suite *CleaningRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	created := suite.addCleaning("Short lived job", 5)

	err := suite.repository.Delete(ctx, created.ID())
	suite.Require().NoError(err)

	suite.assertCleaningCount(0)

	_, err = suite.repository.Get(ctx, created.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CleaningRepositoryIntegrationTestSuite) TestDelete_MissingCleaning_ReturnsNotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, 50000)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CleaningRepositoryIntegrationTestSuite) TestDelete_DoesNotTouchOtherRows() {
	ctx := context.Background()
	keep := suite.addCleaning("Keep me", 10)
	remove := suite.addCleaning("Remove me", 20)

	suite.Require().NoError(suite.repository.Delete(ctx, remove.ID()))

	suite.assertCleaningCount(1)

	retrieved, err := suite.repository.Get(ctx, keep.ID())
	suite.Require().NoError(err)
	suite.Equal("Keep me", retrieved.Name())
}

func (suite *CleaningRepositoryIntegrationTestSuite) addCleaning(name string, price float64) *cleaning.Cleaning {
	aggregate, err := cleaning.NewCleaning(name, nil, price, cleaning.SpotClean)
	suite.Require().NoError(err)

	created, err := suite.repository.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return created
}

// assertCleaningCount verifies the number of cleaning rows in the database.
func (suite *CleaningRepositoryIntegrationTestSuite) assertCleaningCount(expected int) {
	var count int64
	err := suite.db.Model(&cleaningrepo.CleaningDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestCleaningRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CleaningRepositoryIntegrationTestSuite))
}
