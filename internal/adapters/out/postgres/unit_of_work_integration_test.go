package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "github.com/ayobami7/click-and-collect-notif/internal/adapters/out/postgres"
	"github.com/ayobami7/click-and-collect-notif/internal/adapters/out/postgres/collectionrepo"
	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/kernel"
	"github.com/ayobami7/click-and-collect-notif/internal/core/ports"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"

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
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&collectionrepo.CollectionDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE collections").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_Create_ReturnsIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.CollectionRepository())
	suite.NotNil(uow2.CollectionRepository())
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

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := createTestCollection(suite)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CollectionRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	// Visible within the transaction before commit
	retrieved, err := uow.CollectionRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.CollectionRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), retrieved.ID())
	suite.Equal(collection.Pending, retrieved.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := createTestCollection(suite)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CollectionRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	_, err = uow.CollectionRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.CollectionRepository().Get(ctx, aggregate.ID())
	suite.Require().Error(err, "Collection should not exist after rollback")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCollectionWorkflow_WithinSingleTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := createTestCollection(suite)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CollectionRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	err = aggregate.MarkReady()
	suite.Require().NoError(err)
	err = uow.CollectionRepository().Update(ctx, aggregate)
	suite.Require().NoError(err)

	_, err = aggregate.SubmitCollection("Jane Doe")
	suite.Require().NoError(err)
	err = uow.CollectionRepository().Update(ctx, aggregate)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.CollectionRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(collection.Collected, retrieved.Status())
	suite.NotNil(retrieved.CollectedAt())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoryIsolation_BetweenTransactions() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	first := createTestCollection(suite)
	second := createTestCollection(suite)

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.CollectionRepository().Add(ctx, first)
	suite.Require().NoError(err)
	err = uow2.CollectionRepository().Add(ctx, second)
	suite.Require().NoError(err)

	// Each transaction only sees its own rows
	_, err = uow1.CollectionRepository().Get(ctx, first.ID())
	suite.Require().NoError(err, "UOW1 should see its own collection")

	_, err = uow2.CollectionRepository().GetByBarcode(ctx, first.Barcode())
	suite.Require().Error(err, "UOW2 should not see UOW1's uncommitted collection")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.CollectionRepository().GetByBarcode(ctx, first.Barcode())
	suite.Require().NoError(err, "First collection should persist after commit")

	_, err = newUow.CollectionRepository().GetByBarcode(ctx, second.Barcode())
	suite.Require().Error(err, "Second collection should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPartialFailure_RollbackUndoesEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Commit one collection up front
	existing := createTestCollection(suite)
	err := uow.CollectionRepository().Add(ctx, existing)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	fresh := createTestCollection(suite)
	err = uow.CollectionRepository().Add(ctx, fresh)
	suite.Require().NoError(err)

	// Duplicate barcode must fail inside the transaction
	duplicate, err := collection.NewCollection(
		"John Smith",
		"",
		"",
		existing.Barcode(),
		kernel.GenerateOrderNumber(),
		[]collection.Item{{Name: "Butter", Quantity: 1}},
	)
	suite.Require().NoError(err)

	err = uow.CollectionRepository().Add(ctx, duplicate)
	suite.Require().Error(err, "Adding duplicate barcode should fail")
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.CollectionRepository().Get(ctx, existing.ID())
	suite.Require().NoError(err, "Pre-transaction collection should still exist")

	_, err = newUow.CollectionRepository().GetByBarcode(ctx, fresh.Barcode())
	suite.Require().Error(err, "Fresh collection should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_AutoCommits() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := createTestCollection(suite)

	err := uow.CollectionRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.CollectionRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), retrieved.ID())
}

// createTestCollection creates a valid pending collection for testing purposes.
func createTestCollection(suite *UnitOfWorkIntegrationTestSuite) *collection.Collection {
	barcode, err := kernel.GenerateBarcode("")
	suite.Require().NoError(err)

	aggregate, err := collection.NewCollection(
		"Jane Doe",
		"jane@example.com",
		"+44 1234 567890",
		barcode,
		kernel.GenerateOrderNumber(),
		[]collection.Item{{Name: "Oat milk", Quantity: 2}},
	)
	suite.Require().NoError(err)

	return aggregate
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
