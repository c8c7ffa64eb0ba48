package ledger_test

import (
	"testing"

	"foodmarket/internal/core/domain/model/courier"
	"foodmarket/internal/core/domain/model/customer"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/ledger"
	"foodmarket/internal/core/domain/model/menu"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/domain/model/restaurant"
	"foodmarket/internal/core/domain/services"
	"foodmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coordinate(t *testing.T, x, y float64) kernel.Coordinate {
	t.Helper()
	coord, err := kernel.NewCoordinate(x, y)
	require.NoError(t, err)
	return coord
}

func registerCustomer(t *testing.T, l *ledger.Ledger, name string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), name, coordinate(t, 0, 10))
	require.NoError(t, err)
	require.NoError(t, l.RegisterCustomer(c))
	return c
}

func registerRestaurant(t *testing.T, l *ledger.Ledger, name string) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), name, coordinate(t, 0, 0))
	require.NoError(t, err)
	require.NoError(t, l.RegisterRestaurant(r))
	return r
}

func registerCourier(t *testing.T, l *ledger.Ledger, name string, x, y float64) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), name, coordinate(t, x, y))
	require.NoError(t, err)
	c.GoOnDuty()
	require.NoError(t, l.RegisterCourier(c))
	return c
}

func orderWorth(t *testing.T, cust *customer.Customer, rest *restaurant.Restaurant, price float64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), cust.ID(), rest.ID(), cust.Location())
	require.NoError(t, err)
	item, err := menu.NewMenuItem("Dish of the day", menu.CategoryMain, price, menu.DietStandard, false)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item))
	return o
}

func deliverOrder(t *testing.T, l *ledger.Ledger, o *order.Order) {
	t.Helper()
	require.NoError(t, l.StartPreparing(o.ID()))
	require.NoError(t, l.MarkReady(o.ID()))
	require.NoError(t, l.StartDelivery(o.ID()))
	require.NoError(t, l.CompleteOrder(o.ID()))
}

func TestLedger_Register(t *testing.T) {
	t.Run("should reject duplicate registration", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")

		err := l.RegisterCustomer(cust)

		require.ErrorIs(t, err, ledger.ErrAlreadyRegistered)
	})

	t.Run("should look up registered participants", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")
		cour := registerCourier(t, l, "Bob", 1, 0)

		gotCustomer, err := l.CustomerByID(cust.ID())
		require.NoError(t, err)
		assert.True(t, gotCustomer.IsEqual(cust))

		gotRestaurant, err := l.RestaurantByID(rest.ID())
		require.NoError(t, err)
		assert.True(t, gotRestaurant.IsEqual(rest))

		gotCourier, err := l.CourierByID(cour.ID())
		require.NoError(t, err)
		assert.True(t, gotCourier.IsEqual(cour))
	})

	t.Run("should report unknown participants", func(t *testing.T) {
		l := ledger.NewLedger()

		_, err := l.CustomerByID(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject not constructed participants", func(t *testing.T) {
		l := ledger.NewLedger()

		require.Error(t, l.RegisterCustomer(nil))
		require.Error(t, l.RegisterRestaurant(nil))
		require.Error(t, l.RegisterCourier(nil))
	})
}

func TestLedger_PlaceOrder(t *testing.T) {
	t.Run("should price the order and assign the closest courier", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")
		registerCourier(t, l, "Far", 20, 0)
		near := registerCourier(t, l, "Near", 1, 0)

		o := orderWorth(t, cust, rest, 50)
		require.NoError(t, l.PlaceOrder(o))

		price, priced := o.FinalPrice()
		require.True(t, priced)
		assert.InDelta(t, 50.0, price, 0)
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(near.ID()))
	})

	t.Run("should leave the order unassigned when no courier is available", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")

		o := orderWorth(t, cust, rest, 50)

		require.NoError(t, l.PlaceOrder(o))
		assert.Nil(t, o.Courier())
	})

	t.Run("should reject order for unknown customer", func(t *testing.T) {
		l := ledger.NewLedger()
		rest := registerRestaurant(t, l, "La Cantine")
		other, err := customer.NewCustomer(kernel.NewUUID(), "Stranger", coordinate(t, 0, 10))
		require.NoError(t, err)

		placeErr := l.PlaceOrder(orderWorth(t, other, rest, 50))

		require.ErrorIs(t, placeErr, errs.ErrObjectNotFound)
	})

	t.Run("should reject order placed twice", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")
		o := orderWorth(t, cust, rest, 50)
		require.NoError(t, l.PlaceOrder(o))

		err := l.PlaceOrder(o)

		require.Error(t, err)
	})

	t.Run("should apply points card at intake", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")
		require.NoError(t, l.SwitchFidelityCard(cust.ID(), customer.CardTypePoints))

		o := orderWorth(t, cust, rest, 1000)
		require.NoError(t, l.PlaceOrder(o))

		price, priced := o.FinalPrice()
		require.True(t, priced)
		assert.InDelta(t, 900.0, price, 1e-9)
		assert.Equal(t, 0, cust.Points())
	})
}

func TestLedger_AssignPendingOrders(t *testing.T) {
	t.Run("should assign once a courier goes on duty", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")
		o := orderWorth(t, cust, rest, 50)
		require.NoError(t, l.PlaceOrder(o))
		require.Nil(t, o.Courier())

		cour := registerCourier(t, l, "Bob", 1, 0)

		assigned, err := l.AssignPendingOrders()

		require.NoError(t, err)
		assert.Equal(t, 1, assigned)
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(cour.ID()))
	})

	t.Run("should do nothing for an empty backlog", func(t *testing.T) {
		l := ledger.NewLedger()

		assigned, err := l.AssignPendingOrders()

		require.NoError(t, err)
		assert.Zero(t, assigned)
	})
}

func TestLedger_OrderLifecycle(t *testing.T) {
	t.Run("should drive an order to delivery and credit the courier", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")
		cour := registerCourier(t, l, "Bob", 1, 0)

		o := orderWorth(t, cust, rest, 100)
		require.NoError(t, l.PlaceOrder(o))
		deliverOrder(t, l, o)

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, 1, cour.DeliveredCount())
		assert.Len(t, l.CompletedOrders(), 1)
	})

	t.Run("should refuse completing an unassigned order", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")
		o := orderWorth(t, cust, rest, 100)
		require.NoError(t, l.PlaceOrder(o))

		err := l.CompleteOrder(o.ID())

		require.ErrorIs(t, err, order.ErrCourierIsNotAssigned)
	})

	t.Run("should keep cancelled orders out of the aggregates", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")
		o := orderWorth(t, cust, rest, 100)
		require.NoError(t, l.PlaceOrder(o))

		require.NoError(t, l.CancelOrder(o.ID()))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Zero(t, l.TotalIncome())
		assert.Empty(t, l.CompletedOrders())
		assert.Len(t, l.Orders(), 1)
	})
}

func TestLedger_Aggregates(t *testing.T) {
	t.Run("should report income and profit over delivered orders", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")
		registerCourier(t, l, "Bob", 1, 0)

		first := orderWorth(t, cust, rest, 100)
		require.NoError(t, l.PlaceOrder(first))
		deliverOrder(t, l, first)

		second := orderWorth(t, cust, rest, 60)
		require.NoError(t, l.PlaceOrder(second))
		deliverOrder(t, l, second)

		assert.InDelta(t, 160.0, l.TotalIncome(), 1e-9)
		// (100*0.1 + 5 - 10) + (60*0.1 + 5 - 10)
		assert.InDelta(t, 6.0, l.TotalProfit(), 1e-9)
	})

	t.Run("should average income per customer", func(t *testing.T) {
		l := ledger.NewLedger()
		alice := registerCustomer(t, l, "Alice")
		carol := registerCustomer(t, l, "Carol")
		rest := registerRestaurant(t, l, "La Cantine")
		registerCourier(t, l, "Bob", 1, 0)

		for _, o := range []*order.Order{
			orderWorth(t, alice, rest, 20),
			orderWorth(t, alice, rest, 10),
			orderWorth(t, carol, rest, 10),
		} {
			require.NoError(t, l.PlaceOrder(o))
			deliverOrder(t, l, o)
		}

		avg, err := l.AverageIncomePerCustomer()

		require.NoError(t, err)
		assert.InDelta(t, 20.0, avg, 1e-9)
	})

	t.Run("should require delivered orders for the average", func(t *testing.T) {
		l := ledger.NewLedger()

		_, err := l.AverageIncomePerCustomer()

		require.ErrorIs(t, err, errs.ErrNoCompletedOrders)
	})

	t.Run("should rank couriers by completed deliveries", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")
		idle := registerCourier(t, l, "Idle", 50, 0)
		busy := registerCourier(t, l, "Busy", 1, 0)

		o := orderWorth(t, cust, rest, 100)
		require.NoError(t, l.PlaceOrder(o))
		deliverOrder(t, l, o)

		most, err := l.MostActiveCourier()
		require.NoError(t, err)
		assert.True(t, most.IsEqual(busy))

		least, err := l.LeastActiveCourier()
		require.NoError(t, err)
		assert.True(t, least.IsEqual(idle))
	})

	t.Run("should report empty courier roster", func(t *testing.T) {
		l := ledger.NewLedger()

		_, err := l.MostActiveCourier()

		require.ErrorIs(t, err, ledger.ErrNoCouriersRegistered)
	})

	t.Run("should rank restaurants by delivered orders", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		popular := registerRestaurant(t, l, "Popular")
		quiet := registerRestaurant(t, l, "Quiet")
		registerCourier(t, l, "Bob", 1, 0)

		o := orderWorth(t, cust, popular, 100)
		require.NoError(t, l.PlaceOrder(o))
		deliverOrder(t, l, o)

		most, err := l.MostSellingRestaurant()
		require.NoError(t, err)
		assert.True(t, most.IsEqual(popular))

		least, err := l.LeastSellingRestaurant()
		require.NoError(t, err)
		assert.True(t, least.IsEqual(quiet))
	})
}

func TestLedger_Fees(t *testing.T) {
	t.Run("should start with the default schedule", func(t *testing.T) {
		l := ledger.NewLedger()

		fees := l.Fees()

		assert.InDelta(t, 5.0, fees.ServiceFee(), 0)
		assert.InDelta(t, 0.1, fees.Markup(), 0)
		assert.InDelta(t, 10.0, fees.DeliveryCost(), 0)
	})

	t.Run("should replace the schedule atomically", func(t *testing.T) {
		l := ledger.NewLedger()
		fees, err := services.NewFeeSchedule(3, 0.2, 7)
		require.NoError(t, err)

		require.NoError(t, l.SetFees(fees))

		assert.InDelta(t, 3.0, l.Fees().ServiceFee(), 0)
	})

	t.Run("should reject a not constructed schedule", func(t *testing.T) {
		l := ledger.NewLedger()

		require.Error(t, l.SetFees(services.FeeSchedule{}))
	})
}

func TestLedger_ApplyTargetProfit(t *testing.T) {
	deliveredOrderLedger := func(t *testing.T) *ledger.Ledger {
		t.Helper()
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")
		registerCourier(t, l, "Bob", 1, 0)
		o := orderWorth(t, cust, rest, 100)
		require.NoError(t, l.PlaceOrder(o))
		deliverOrder(t, l, o)
		return l
	}

	t.Run("should commit the solved schedule", func(t *testing.T) {
		l := deliveredOrderLedger(t)

		// one order of 100: serviceFee = 30 + 10 - 100*0.1
		require.NoError(t, l.ApplyTargetProfit(30))

		assert.InDelta(t, 30.0, l.Fees().ServiceFee(), 1e-9)
	})

	t.Run("should leave fees unchanged for an unreachable target", func(t *testing.T) {
		l := deliveredOrderLedger(t)
		fees, err := services.NewFeeSchedule(0, 0, 5)
		require.NoError(t, err)
		require.NoError(t, l.SetFees(fees))
		require.NoError(t, l.UseProfitTargetPolicy(services.ProfitByDeliveryCost))

		targetErr := l.ApplyTargetProfit(100)

		require.ErrorIs(t, targetErr, errs.ErrTargetUnreachable)
		assert.InDelta(t, 0.0, l.Fees().ServiceFee(), 0)
		assert.InDelta(t, 0.0, l.Fees().Markup(), 0)
		assert.InDelta(t, 5.0, l.Fees().DeliveryCost(), 0)
	})

	t.Run("should reject a negative target", func(t *testing.T) {
		l := deliveredOrderLedger(t)

		err := l.ApplyTargetProfit(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require delivered orders", func(t *testing.T) {
		l := ledger.NewLedger()

		err := l.ApplyTargetProfit(30)

		require.ErrorIs(t, err, errs.ErrNoCompletedOrders)
	})
}

func TestLedger_Policies(t *testing.T) {
	t.Run("should start with the default policies", func(t *testing.T) {
		l := ledger.NewLedger()

		assignment, profit, analytics := l.ActivePolicies()

		assert.Equal(t, services.AssignmentFastest, assignment)
		assert.Equal(t, services.ProfitByServiceFee, profit)
		assert.Equal(t, services.AnalyticsMostOrderedHalfMeal, analytics)
	})

	t.Run("should swap policies at runtime", func(t *testing.T) {
		l := ledger.NewLedger()

		require.NoError(t, l.UseAssignmentPolicy(services.AssignmentFairOccupation))
		require.NoError(t, l.UseProfitTargetPolicy(services.ProfitByMarkup))
		require.NoError(t, l.UseAnalyticsPolicy(services.AnalyticsLeastOrderedItem))

		assignment, profit, analytics := l.ActivePolicies()
		assert.Equal(t, services.AssignmentFairOccupation, assignment)
		assert.Equal(t, services.ProfitByMarkup, profit)
		assert.Equal(t, services.AnalyticsLeastOrderedItem, analytics)
	})

	t.Run("should reject unknown policy names", func(t *testing.T) {
		l := ledger.NewLedger()

		require.ErrorIs(t, l.UseAssignmentPolicy("RANDOM"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, l.UseProfitTargetPolicy("BY_LUCK"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, l.UseAnalyticsPolicy("MOST_PROFITABLE"), errs.ErrValueIsInvalid)
	})
}

func TestLedger_MenuAnalytics(t *testing.T) {
	t.Run("should rank over delivered orders only", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")
		registerCourier(t, l, "Bob", 1, 0)
		require.NoError(t, l.UseAnalyticsPolicy(services.AnalyticsMostOrderedItem))

		delivered := orderWorth(t, cust, rest, 100)
		require.NoError(t, l.PlaceOrder(delivered))
		deliverOrder(t, l, delivered)

		pending := orderWorth(t, cust, rest, 100)
		require.NoError(t, l.PlaceOrder(pending))

		entries, err := l.MenuAnalytics()

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, services.AnalyticsEntry{Name: "Dish of the day", Count: 1}, entries[0])
	})

	t.Run("should return empty ranking for empty history", func(t *testing.T) {
		l := ledger.NewLedger()

		entries, err := l.MenuAnalytics()

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestLedger_SpecialOffers(t *testing.T) {
	t.Run("should notify only subscribed customers", func(t *testing.T) {
		l := ledger.NewLedger()
		subscribed := registerCustomer(t, l, "Alice")
		unsubscribed := registerCustomer(t, l, "Carol")
		rest := registerRestaurant(t, l, "La Cantine")
		require.NoError(t, l.SetCustomerNotifications(subscribed.ID(), true))

		notified, err := l.BroadcastSpecialOffer(rest.ID(), "Free dessert this week")

		require.NoError(t, err)
		assert.Equal(t, 1, notified)
		assert.Equal(t, []string{"Free dessert this week"}, subscribed.Notifications())
		assert.Empty(t, unsubscribed.Notifications())
	})

	t.Run("should reject offer from unknown restaurant", func(t *testing.T) {
		l := ledger.NewLedger()

		_, err := l.BroadcastSpecialOffer(kernel.NewUUID(), "Free dessert")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should require a message", func(t *testing.T) {
		l := ledger.NewLedger()
		rest := registerRestaurant(t, l, "La Cantine")

		_, err := l.BroadcastSpecialOffer(rest.ID(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestLedger_SwitchFidelityCard(t *testing.T) {
	t.Run("should forfeit points on switch", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")
		rest := registerRestaurant(t, l, "La Cantine")
		require.NoError(t, l.SwitchFidelityCard(cust.ID(), customer.CardTypePoints))

		o := orderWorth(t, cust, rest, 550)
		require.NoError(t, l.PlaceOrder(o))
		require.Equal(t, 55, cust.Points())

		require.NoError(t, l.SwitchFidelityCard(cust.ID(), customer.CardTypeBasic))

		assert.Equal(t, customer.CardTypeBasic, cust.Card().Type())
		assert.Zero(t, cust.Points())
	})

	t.Run("should reject unknown card type", func(t *testing.T) {
		l := ledger.NewLedger()
		cust := registerCustomer(t, l, "Alice")

		err := l.SwitchFidelityCard(cust.ID(), "GOLD")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLedger_MenuManagement(t *testing.T) {
	t.Run("should add menu items and compose meals", func(t *testing.T) {
		l := ledger.NewLedger()
		rest := registerRestaurant(t, l, "La Cantine")

		salad, err := menu.NewMenuItem("Salad", menu.CategoryStarter, 20, menu.DietVegetarian, false)
		require.NoError(t, err)
		pizza, err := menu.NewMenuItem("Pizza", menu.CategoryMain, 100, menu.DietStandard, false)
		require.NoError(t, err)
		cake, err := menu.NewMenuItem("Cake", menu.CategoryDessert, 30, menu.DietStandard, false)
		require.NoError(t, err)

		require.NoError(t, l.AddMenuItem(rest.ID(), salad))
		require.NoError(t, l.AddMenuItem(rest.ID(), pizza))
		require.NoError(t, l.AddMenuItem(rest.ID(), cake))

		half, err := l.CreateHalfMeal(rest.ID(), "Lunch Deal", "Salad", "Pizza", menu.MealDietStandard, false)
		require.NoError(t, err)
		assert.Equal(t, "Lunch Deal", half.Name())
		assert.False(t, half.IsMealOfTheWeek())

		full, err := l.CreateFullMeal(rest.ID(), "Feast", "Salad", "Pizza", "Cake", menu.MealDietStandard, true)
		require.NoError(t, err)
		assert.Equal(t, "Feast", full.Name())
		assert.True(t, full.IsMealOfTheWeek())
	})

	t.Run("should reject meals built from unknown items", func(t *testing.T) {
		l := ledger.NewLedger()
		rest := registerRestaurant(t, l, "La Cantine")

		_, err := l.CreateHalfMeal(rest.ID(), "Lunch Deal", "Salad", "Pizza", menu.MealDietStandard, false)

		require.ErrorIs(t, err, restaurant.ErrMenuItemNotFound)
	})

	t.Run("should reject unknown restaurant", func(t *testing.T) {
		l := ledger.NewLedger()
		pizza, err := menu.NewMenuItem("Pizza", menu.CategoryMain, 100, menu.DietStandard, false)
		require.NoError(t, err)

		err = l.AddMenuItem(kernel.NewUUID(), pizza)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should update discount factors", func(t *testing.T) {
		l := ledger.NewLedger()
		rest := registerRestaurant(t, l, "La Cantine")

		require.NoError(t, l.SetRestaurantDiscounts(rest.ID(), 0.1, 0.25))

		assert.InDelta(t, 0.1, rest.GenericDiscount(), 0)
		assert.InDelta(t, 0.25, rest.SpecialDiscount(), 0)
	})
}
