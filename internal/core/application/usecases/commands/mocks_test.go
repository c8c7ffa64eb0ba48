package commands_test

import (
	"context"
	"testing"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/domain/model/courier"
	"foodmarket/internal/core/domain/model/customer"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/ledger"
	"foodmarket/internal/core/domain/model/menu"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/domain/model/restaurant"
	"foodmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*courier.Courier), args.Error(1)
}
func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCourierUoW struct{ mock.Mock }

func (m *MockCourierUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCourierUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCourierUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCourierUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// marketLedger builds a ledger with one customer, one restaurant serving a
// "Pizza" item, and one on-duty courier.
func marketLedger(t *testing.T) (*ledger.Ledger, *customer.Customer, *restaurant.Restaurant, *courier.Courier) {
	t.Helper()

	l := ledger.NewLedger()

	customerLoc, err := kernel.NewCoordinate(0, 10)
	require.NoError(t, err)
	cust, err := customer.NewCustomer(kernel.NewUUID(), "Alice", customerLoc)
	require.NoError(t, err)
	require.NoError(t, l.RegisterCustomer(cust))

	restaurantLoc, err := kernel.NewCoordinate(0, 0)
	require.NoError(t, err)
	rest, err := restaurant.NewRestaurant(kernel.NewUUID(), "La Cantine", restaurantLoc)
	require.NoError(t, err)
	pizza, err := menu.NewMenuItem("Pizza", menu.CategoryMain, 100, menu.DietStandard, false)
	require.NoError(t, err)
	require.NoError(t, rest.AddMenuItem(pizza))
	require.NoError(t, l.RegisterRestaurant(rest))

	courierLoc, err := kernel.NewCoordinate(1, 0)
	require.NoError(t, err)
	cour, err := courier.NewCourier(kernel.NewUUID(), "Bob", courierLoc)
	require.NoError(t, err)
	cour.GoOnDuty()
	require.NoError(t, l.RegisterCourier(cour))

	return l, cust, rest, cour
}

// placePizzaOrder runs an order for one Pizza through the given ledger via
// the placement handler, with the audit write going to repo.
func placePizzaOrder(
	t *testing.T,
	l *ledger.Ledger,
	cust *customer.Customer,
	rest *restaurant.Restaurant,
) kernel.UUID {
	t.Helper()

	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, cust.ID(), rest.ID(), []string{"Pizza"}, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(l, factory)
	require.NoError(t, h.Handle(ctx, cmd))

	return orderID
}
