package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence and
// row-locking behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createUnclaimedOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_InvalidOrder_RejectedBeforePersistence() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, nil)
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)

	err = suite.repository.Add(ctx, &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)

	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	originalOrder := suite.createUnclaimedOrder()
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal(originalOrder.ClientID(), retrievedOrder.ClientID())
	suite.Nil(retrievedOrder.CourierID())
	suite.Equal(originalOrder.Origin().Latitude(), retrievedOrder.Origin().Latitude())
	suite.Equal(originalOrder.Origin().Longitude(), retrievedOrder.Origin().Longitude())
	suite.Equal(originalOrder.Destination().Latitude(), retrievedOrder.Destination().Latitude())
	suite.Equal(originalOrder.Destination().Longitude(), retrievedOrder.Destination().Longitude())
	suite.Equal(originalOrder.Comment(), retrievedOrder.Comment())
	suite.Equal(originalOrder.DistanceKm(), retrievedOrder.DistanceKm())
	suite.Equal(originalOrder.Price(), retrievedOrder.Price())
	suite.Equal(order.New, retrievedOrder.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ClaimPersistsCourierBinding() {
	ctx := context.Background()

	testOrder := suite.createUnclaimedOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	courierID := kernel.NewUUID()
	suite.Require().NoError(testOrder.Claim(courierID, suite.now()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.CourierID())
	suite.Equal(courierID, *retrievedOrder.CourierID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_FullProgressionSurvivesReload() {
	ctx := context.Background()

	testOrder := suite.createUnclaimedOrder()
	courierID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Claim(courierID, suite.now()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	for _, target := range []order.Status{order.ToPickup, order.ToDropoff, order.Arrived, order.Completed} {
		// Reload from storage each step so the edge check runs against
		// the persisted state, not the in-memory one.
		persisted, err := suite.repository.Get(ctx, testOrder.ID())
		suite.Require().NoError(err)

		suite.Require().NoError(persisted.AdvanceTo(courierID, target, suite.now()))
		suite.Require().NoError(suite.repository.Update(ctx, persisted))
	}

	finalOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, finalOrder.Status())
	suite.Require().NotNil(finalOrder.CourierID())
	suite.Equal(courierID, *finalOrder.CourierID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.createUnclaimedOrder()

	err := suite.repository.Update(ctx, nonExistentOrder)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_LockedRow_ReturnsOrderBusy() {
	ctx := context.Background()

	testOrder := suite.createUnclaimedOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First transaction takes the row lock and holds it.
	holder := suite.db.Begin()
	suite.Require().NoError(holder.Error)
	holderRepo := orderrepo.NewGormOrderRepository(holder, suite.tracker)

	lockedOrder, err := holderRepo.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), lockedOrder.ID())

	// Second transaction must give up after the bounded wait.
	contender := suite.db.Begin()
	suite.Require().NoError(contender.Error)
	contenderRepo := orderrepo.NewGormOrderRepository(contender, suite.tracker)

	started := time.Now()
	busyOrder, err := contenderRepo.GetForUpdate(ctx, testOrder.ID())
	suite.Nil(busyOrder)
	suite.Require().ErrorIs(err, ports.ErrOrderBusy)
	suite.Less(time.Since(started), 5*time.Second)
	suite.Require().NoError(contender.Rollback().Error)

	// Once the holder releases the lock the row is claimable again.
	suite.Require().NoError(holder.Rollback().Error)

	retry := suite.db.Begin()
	suite.Require().NoError(retry.Error)
	retryRepo := orderrepo.NewGormOrderRepository(retry, suite.tracker)

	reclaimedOrder, err := retryRepo.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), reclaimedOrder.ID())
	suite.Require().NoError(retry.Rollback().Error)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_NonExistentOrder_ReturnsNotFoundError() {
	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := orderrepo.NewGormOrderRepository(tx, suite.tracker)

	retrievedOrder, err := txRepo.GetForUpdate(context.Background(), kernel.NewUUID())
	suite.Nil(retrievedOrder)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInNewStatus_ReturnsOnlyUnclaimedOldestFirst() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)

	older := suite.addUnclaimedOrderCreatedAt(ctx, suite.now().Add(-2*time.Hour))
	newer := suite.addUnclaimedOrderCreatedAt(ctx, suite.now().Add(-1*time.Hour))

	claimedOrder := suite.createUnclaimedOrder()
	suite.Require().NoError(claimedOrder.Claim(kernel.NewUUID(), suite.now()))
	suite.Require().NoError(suite.repository.Add(ctx, claimedOrder))

	openOrders, err := suite.repository.GetAllInNewStatus(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(openOrders, 2)
	suite.Equal(older.ID(), openOrders[0].ID())
	suite.Equal(newer.ID(), openOrders[1].ID())
	for _, o := range openOrders {
		suite.Equal(order.New, o.Status())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInNewStatus_NoUnclaimedOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()

	claimedOrder := suite.createUnclaimedOrder()
	suite.Require().NoError(claimedOrder.Claim(kernel.NewUUID(), suite.now()))
	suite.Require().NoError(suite.repository.Add(ctx, claimedOrder))

	openOrders, err := suite.repository.GetAllInNewStatus(ctx)
	suite.Require().NoError(err)
	suite.Empty(openOrders)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllNewCreatedBefore_FiltersByCutoff() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)

	stale := suite.addUnclaimedOrderCreatedAt(ctx, suite.now().Add(-30*time.Minute))
	suite.addUnclaimedOrderCreatedAt(ctx, suite.now().Add(-1*time.Minute))

	staleOrders, err := suite.repository.GetAllNewCreatedBefore(ctx, suite.now().Add(-10*time.Minute))
	suite.Require().NoError(err)

	suite.Require().Len(staleOrders, 1)
	suite.Equal(stale.ID(), staleOrders[0].ID())
}

// createUnclaimedOrder builds a freshly quoted order that has not been persisted.
func (suite *OrderRepositoryIntegrationTestSuite) createUnclaimedOrder() *order.Order {
	origin, err := kernel.NewLocation(42.8746, 74.6122)
	suite.Require().NoError(err)
	destination, err := kernel.NewLocation(42.8800, 74.6300)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		origin, destination,
		"leave at the door", 1.57, 82.0,
		suite.now(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// addUnclaimedOrderCreatedAt persists an unclaimed order with a pinned
// creation time, for ordering and cutoff assertions.
func (suite *OrderRepositoryIntegrationTestSuite) addUnclaimedOrderCreatedAt(
	ctx context.Context, createdAt time.Time,
) *order.Order {
	origin, err := kernel.NewLocation(42.8746, 74.6122)
	suite.Require().NoError(err)
	destination, err := kernel.NewLocation(42.8800, 74.6300)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		origin, destination,
		"", 1.57, 82.0,
		createdAt,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	return testOrder
}

// now returns the current time truncated to microseconds, matching the
// precision PostgreSQL stores for timestamps.
func (suite *OrderRepositoryIntegrationTestSuite) now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
