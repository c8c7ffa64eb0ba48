package queries_test

import (
	"testing"

	"foodmarket/internal/core/domain/model/courier"
	"foodmarket/internal/core/domain/model/customer"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/ledger"
	"foodmarket/internal/core/domain/model/menu"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
)

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

// deliverPizzaOrder places an order for one Pizza and drives it through the
// full lifecycle so it lands in the delivered-order history.
func deliverPizzaOrder(
	t *testing.T,
	l *ledger.Ledger,
	cust *customer.Customer,
	rest *restaurant.Restaurant,
) kernel.UUID {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), cust.ID(), rest.ID(), cust.Location())
	require.NoError(t, err)
	pizza, err := rest.MenuItemByName("Pizza")
	require.NoError(t, err)
	require.NoError(t, o.AddItem(pizza))

	require.NoError(t, l.PlaceOrder(o))
	require.NoError(t, l.StartPreparing(o.ID()))
	require.NoError(t, l.MarkReady(o.ID()))
	require.NoError(t, l.StartDelivery(o.ID()))
	require.NoError(t, l.CompleteOrder(o.ID()))

	return o.ID()
}
