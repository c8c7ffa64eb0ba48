package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"foodmarket/internal/adapters/out/postgres/orderrepo"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify audit trail persistence behavior.
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

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	delivery, err := kernel.NewCoordinate(3.5, 8)
	suite.Require().NoError(err)

	finalPrice := 94.5
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	originalOrder, err := order.RestoreOrder(
		id, customerID, restaurantID, &courierID, delivery, createdAt, &finalPrice, order.InDelivery,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrievedOrder.ID())
	suite.Equal(customerID, retrievedOrder.CustomerID())
	suite.Equal(restaurantID, retrievedOrder.RestaurantID())
	suite.Require().NotNil(retrievedOrder.Courier())
	suite.Equal(courierID, *retrievedOrder.Courier())
	suite.InDelta(delivery.X(), retrievedOrder.DeliveryLocation().X(), 0)
	suite.InDelta(delivery.Y(), retrievedOrder.DeliveryLocation().Y(), 0)
	price, priced := retrievedOrder.FinalPrice()
	suite.True(priced)
	suite.InDelta(finalPrice, price, 1e-9)
	suite.Equal(order.InDelivery, retrievedOrder.Status())
	suite.WithinDuration(createdAt, retrievedOrder.CreatedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnpricedOrder_HasNoFinalPrice() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Nil(retrievedOrder.Courier())
	_, priced := retrievedOrder.FinalPrice()
	suite.False(priced)
	suite.Equal(order.Created, retrievedOrder.Status())

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

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_InvalidID_ReturnsError() {
	_, err := suite.repository.Get(context.Background(), kernel.UUID{})
	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleProgression_PersistsEachStep() {
	ctx := context.Background()

	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	delivery, err := kernel.NewCoordinate(1, 2)
	suite.Require().NoError(err)
	finalPrice := 42.0

	initial, err := order.RestoreOrder(id, customerID, restaurantID, nil, delivery, time.Now(), &finalPrice, order.Created)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", id, mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, initial))

	assigned, err := order.RestoreOrder(id, customerID, restaurantID, &courierID, delivery, time.Now(), &finalPrice, order.Preparing)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, assigned))

	delivered, err := order.RestoreOrder(id, customerID, restaurantID, &courierID, delivery, time.Now(), &finalPrice, order.Delivered)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, delivered))

	retrievedOrder, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.Courier())
	suite.Equal(courierID, *retrievedOrder.Courier())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder()
	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	delivery, err := kernel.NewCoordinate(5, 5)
	suite.Require().NoError(err)
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), delivery)
	suite.Require().NoError(err)
	return testOrder
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
