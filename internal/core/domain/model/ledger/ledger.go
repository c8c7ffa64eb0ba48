package ledger

import (
	"errors"
	"sync"

	"foodmarket/internal/core/domain/model/courier"
	"foodmarket/internal/core/domain/model/customer"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/menu"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/domain/model/restaurant"
	"foodmarket/internal/core/domain/services"
	"foodmarket/internal/pkg/errs"
)

// Domain errors for ledger operations.
var (
	// ErrAlreadyRegistered is returned when registering a participant whose ID is already known.
	ErrAlreadyRegistered = errors.New("participant is already registered")
	// ErrOrderAlreadyPlaced is returned when placing an order whose ID is already known.
	ErrOrderAlreadyPlaced = errors.New("order is already placed")
	// ErrNoCouriersRegistered is returned by courier rankings over an empty roster.
	ErrNoCouriersRegistered = errors.New("no couriers registered")
	// ErrNoRestaurantsRegistered is returned by restaurant rankings over an empty roster.
	ErrNoRestaurantsRegistered = errors.New("no restaurants registered")
)

// Ledger is the marketplace's aggregate root. It owns every registered
// customer, restaurant and courier, every placed order, the current fee
// schedule and the active decision policies. All reads of aggregate state
// and all mutations are serialized through a single mutex, so concurrent
// request handlers cannot interleave an assignment with a duty change or a
// profit-target solve with a fee update.
//
// The ledger drives an accepted order through the fidelity discount and
// courier assignment at intake, through the kitchen statuses on demand, and
// into the completed history on delivery. Only delivered orders feed the
// income, profit, ranking and analytics aggregates; cancelled orders are
// retained but never counted.
type Ledger struct {
	mu sync.Mutex

	customers   map[kernel.UUID]*customer.Customer
	restaurants map[kernel.UUID]*restaurant.Restaurant
	couriers    map[kernel.UUID]*courier.Courier

	// registration order, the tie-break for activity rankings
	courierRoster    []*courier.Courier
	restaurantRoster []*restaurant.Restaurant

	orders    map[kernel.UUID]*order.Order
	orderLog  []*order.Order
	completed []*order.Order

	fees services.FeeSchedule

	assignment services.AssignmentPolicy
	profit     services.ProfitTargetPolicy
	analytics  services.OrderAnalyticsPolicy
}

// NewLedger creates an empty ledger with the marketplace defaults: the
// default fee schedule, fastest-delivery assignment, profit targeting by
// service fee and most-ordered-half-meal analytics.
func NewLedger() *Ledger {
	return &Ledger{
		customers:   make(map[kernel.UUID]*customer.Customer),
		restaurants: make(map[kernel.UUID]*restaurant.Restaurant),
		couriers:    make(map[kernel.UUID]*courier.Courier),
		orders:      make(map[kernel.UUID]*order.Order),
		completed:   make([]*order.Order, 0),
		fees:        services.NewDefaultFeeSchedule(),
		assignment:  services.NewFastestDelivery(),
		profit:      services.NewTargetByServiceFee(),
		analytics:   services.NewMostOrderedHalfMeal(),
	}
}

// RegisterCustomer adds a customer to the marketplace.
func (l *Ledger) RegisterCustomer(c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.customers[c.ID()]; ok {
		return ErrAlreadyRegistered
	}

	l.customers[c.ID()] = c
	return nil
}

// RegisterRestaurant adds a restaurant to the marketplace.
func (l *Ledger) RegisterRestaurant(r *restaurant.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.restaurants[r.ID()]; ok {
		return ErrAlreadyRegistered
	}

	l.restaurants[r.ID()] = r
	l.restaurantRoster = append(l.restaurantRoster, r)
	return nil
}

// RegisterCourier adds a courier to the fleet.
func (l *Ledger) RegisterCourier(c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.couriers[c.ID()]; ok {
		return ErrAlreadyRegistered
	}

	l.couriers[c.ID()] = c
	l.courierRoster = append(l.courierRoster, c)
	return nil
}

// CustomerByID looks up a registered customer.
func (l *Ledger) CustomerByID(id kernel.UUID) (*customer.Customer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.findCustomer(id)
}

// RestaurantByID looks up a registered restaurant.
func (l *Ledger) RestaurantByID(id kernel.UUID) (*restaurant.Restaurant, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.findRestaurant(id)
}

// CourierByID looks up a registered courier.
func (l *Ledger) CourierByID(id kernel.UUID) (*courier.Courier, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.findCourier(id)
}

// OrderByID looks up a placed order.
func (l *Ledger) OrderByID(id kernel.UUID) (*order.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.findOrder(id)
}

// SetCourierDuty puts a courier on or off duty.
// Duty changes go through the ledger so they cannot interleave with an
// assignment reading the duty flag.
func (l *Ledger) SetCourierDuty(courierID kernel.UUID, onDuty bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, err := l.findCourier(courierID)
	if err != nil {
		return err
	}

	if onDuty {
		c.GoOnDuty()
	} else {
		c.GoOffDuty()
	}
	return nil
}

// UpdateCourierLocation moves a courier to a new position.
func (l *Ledger) UpdateCourierLocation(courierID kernel.UUID, location kernel.Coordinate) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, err := l.findCourier(courierID)
	if err != nil {
		return err
	}

	return c.UpdateLocation(location)
}

// PlaceOrder accepts a fully composed order into the marketplace.
//
// Intake expects a freshly created order: status Created, no courier, no
// final price. The ledger prices the order through the customer's fidelity
// card, then asks the active assignment policy for a courier. Finding no
// candidate is not a failure; the order stays unassigned and is retried
// later via AssignPendingOrders.
func (l *Ledger) PlaceOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.Created {
		return errs.NewValueIsInvalidError("order status")
	}
	if o.Courier() != nil {
		return errs.NewValueIsInvalidError("order courier")
	}
	if _, priced := o.FinalPrice(); priced {
		return errs.NewValueIsInvalidError("order final price")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.orders[o.ID()]; ok {
		return ErrOrderAlreadyPlaced
	}

	cust, err := l.findCustomer(o.CustomerID())
	if err != nil {
		return err
	}
	rest, err := l.findRestaurant(o.RestaurantID())
	if err != nil {
		return err
	}

	finalPrice, err := cust.ApplyFidelityDiscount(o.FullPrice())
	if err != nil {
		return err
	}
	if err := o.SetFinalPrice(finalPrice); err != nil {
		return err
	}

	if err := l.tryAssign(o, rest); err != nil {
		return err
	}

	l.orders[o.ID()] = o
	l.orderLog = append(l.orderLog, o)
	return nil
}

// AssignPendingOrders retries courier assignment for every order that is
// still unassigned and has not left the restaurant. It reports how many
// orders found a courier this round.
func (l *Ledger) AssignPendingOrders() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	assigned := 0
	for _, o := range l.orderLog {
		if o.Courier() != nil || o.Status().ValidateAssign() != nil {
			continue
		}

		rest, err := l.findRestaurant(o.RestaurantID())
		if err != nil {
			return assigned, err
		}

		if err := l.tryAssign(o, rest); err != nil {
			return assigned, err
		}
		if o.Courier() != nil {
			assigned++
		}
	}

	return assigned, nil
}

// tryAssign runs the active assignment policy and binds the selected courier
// to the order. A no-candidate outcome leaves the order unassigned.
// Callers must hold the mutex.
func (l *Ledger) tryAssign(o *order.Order, rest *restaurant.Restaurant) error {
	selected, err := l.assignment.SelectCourier(o, rest.Location(), l.courierRoster)
	if errors.Is(err, services.ErrCourierNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return o.Assign(selected.ID())
}

// StartPreparing moves an order into the kitchen.
func (l *Ledger) StartPreparing(orderID kernel.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	o, err := l.findOrder(orderID)
	if err != nil {
		return err
	}
	return o.StartPreparing()
}

// MarkReady marks an order as ready for pickup.
func (l *Ledger) MarkReady(orderID kernel.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	o, err := l.findOrder(orderID)
	if err != nil {
		return err
	}
	return o.MarkReady()
}

// StartDelivery hands an order to its assigned courier.
func (l *Ledger) StartDelivery(orderID kernel.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	o, err := l.findOrder(orderID)
	if err != nil {
		return err
	}
	return o.StartDelivery()
}

// CompleteOrder marks an order as delivered, credits the delivery to the
// assigned courier and moves the order into the completed history that
// feeds income, profit and analytics.
func (l *Ledger) CompleteOrder(orderID kernel.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	o, err := l.findOrder(orderID)
	if err != nil {
		return err
	}
	if o.Courier() == nil {
		return order.ErrCourierIsNotAssigned
	}

	c, err := l.findCourier(*o.Courier())
	if err != nil {
		return err
	}

	if err := o.Deliver(); err != nil {
		return err
	}

	c.CompleteDelivery()
	l.completed = append(l.completed, o)
	return nil
}

// CancelOrder abandons an order that has not left the restaurant.
// Cancelled orders are kept for audit but excluded from every aggregate.
func (l *Ledger) CancelOrder(orderID kernel.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	o, err := l.findOrder(orderID)
	if err != nil {
		return err
	}
	return o.Cancel()
}

// Fees returns the current fee schedule.
func (l *Ledger) Fees() services.FeeSchedule {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fees
}

// SetFees replaces the fee schedule. The triple is replaced atomically so
// readers never observe a half-updated schedule.
func (l *Ledger) SetFees(fees services.FeeSchedule) error {
	if err := fees.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.fees = fees
	return nil
}

// ApplyTargetProfit solves the current fees for the given target profit with
// the active profit-target policy and commits the solved schedule.
//
// The commit is all or nothing: an unreachable target leaves the fee
// schedule exactly as it was.
func (l *Ledger) ApplyTargetProfit(targetProfit float64) error {
	if targetProfit < 0 {
		return errs.NewValueIsInvalidError("targetProfit")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	solved, err := l.profit.SolveTarget(l.totalIncome(), len(l.completed), l.fees, targetProfit)
	if err != nil {
		return err
	}

	l.fees = solved
	return nil
}

// TotalIncome sums the final prices of all delivered orders.
func (l *Ledger) TotalIncome() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalIncome()
}

// TotalProfit sums the per-order profit of all delivered orders under the
// current fee schedule.
func (l *Ledger) TotalProfit() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0.0
	for _, o := range l.completed {
		price, _ := o.FinalPrice()
		total += l.fees.ProfitPerOrder(price)
	}
	return total
}

// AverageIncomePerCustomer returns the mean of per-customer income sums over
// the customers with at least one delivered order.
func (l *Ledger) AverageIncomePerCustomer() (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.completed) == 0 {
		return 0, errs.NewNoCompletedOrdersError("averageIncomePerCustomer")
	}

	sums := make(map[kernel.UUID]float64)
	for _, o := range l.completed {
		price, _ := o.FinalPrice()
		sums[o.CustomerID()] += price
	}

	total := 0.0
	for _, sum := range sums {
		total += sum
	}
	return total / float64(len(sums)), nil
}

// MostActiveCourier returns the courier with the most completed deliveries.
// Ties break in favor of the earliest registered courier.
func (l *Ledger) MostActiveCourier() (*courier.Courier, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rankCourier(func(candidate, best *courier.Courier) bool {
		return candidate.DeliveredCount() > best.DeliveredCount()
	})
}

// LeastActiveCourier returns the courier with the fewest completed deliveries.
// Ties break in favor of the earliest registered courier.
func (l *Ledger) LeastActiveCourier() (*courier.Courier, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rankCourier(func(candidate, best *courier.Courier) bool {
		return candidate.DeliveredCount() < best.DeliveredCount()
	})
}

// MostSellingRestaurant returns the restaurant with the most delivered
// orders. Ties break in favor of the earliest registered restaurant.
func (l *Ledger) MostSellingRestaurant() (*restaurant.Restaurant, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rankRestaurant(func(candidate, best int) bool { return candidate > best })
}

// LeastSellingRestaurant returns the restaurant with the fewest delivered
// orders. Ties break in favor of the earliest registered restaurant.
func (l *Ledger) LeastSellingRestaurant() (*restaurant.Restaurant, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rankRestaurant(func(candidate, best int) bool { return candidate < best })
}

// MenuAnalytics runs the active analytics policy over the delivered orders.
// An empty history yields an empty ranking.
func (l *Ledger) MenuAnalytics() ([]services.AnalyticsEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.analytics.Rank(l.completed)
}

// UseAssignmentPolicy swaps the active courier-assignment policy.
// Takes effect for all subsequent intakes and retries.
func (l *Ledger) UseAssignmentPolicy(name services.AssignmentPolicyName) error {
	policy, ok := services.AssignmentPolicyFromName(name)
	if !ok {
		return errs.NewValueIsInvalidError("assignment policy")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.assignment = policy
	return nil
}

// UseProfitTargetPolicy swaps the active profit-target policy.
func (l *Ledger) UseProfitTargetPolicy(name services.ProfitPolicyName) error {
	policy, ok := services.ProfitTargetPolicyFromName(name)
	if !ok {
		return errs.NewValueIsInvalidError("profit target policy")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.profit = policy
	return nil
}

// UseAnalyticsPolicy swaps the active order-analytics policy.
func (l *Ledger) UseAnalyticsPolicy(name services.AnalyticsPolicyName) error {
	policy, ok := services.AnalyticsPolicyFromName(name)
	if !ok {
		return errs.NewValueIsInvalidError("analytics policy")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.analytics = policy
	return nil
}

// ActivePolicies returns the names of the three active decision policies.
func (l *Ledger) ActivePolicies() (
	services.AssignmentPolicyName,
	services.ProfitPolicyName,
	services.AnalyticsPolicyName,
) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.assignment.Name(), l.profit.Name(), l.analytics.Name()
}

// SwitchFidelityCard rebinds a customer to the given card type.
// Accumulated points are forfeited on every switch.
func (l *Ledger) SwitchFidelityCard(customerID kernel.UUID, cardType customer.CardType) error {
	card, ok := customer.CardFromType(cardType)
	if !ok {
		return errs.NewValueIsInvalidError("card type")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cust, err := l.findCustomer(customerID)
	if err != nil {
		return err
	}
	return cust.SwitchCard(card)
}

// SetCustomerNotifications subscribes or unsubscribes a customer from
// special-offer messages.
func (l *Ledger) SetCustomerNotifications(customerID kernel.UUID, enabled bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cust, err := l.findCustomer(customerID)
	if err != nil {
		return err
	}

	if enabled {
		cust.EnableNotifications()
	} else {
		cust.DisableNotifications()
	}
	return nil
}

// AddMenuItem puts a new dish on a restaurant's menu.
func (l *Ledger) AddMenuItem(restaurantID kernel.UUID, item menu.MenuItem) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rest, err := l.findRestaurant(restaurantID)
	if err != nil {
		return err
	}
	return rest.AddMenuItem(item)
}

// CreateHalfMeal composes a two-course meal from a restaurant's own menu.
func (l *Ledger) CreateHalfMeal(
	restaurantID kernel.UUID,
	name string,
	firstItem string,
	secondItem string,
	diet menu.MealDiet,
	mealOfTheWeek bool,
) (menu.Meal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rest, err := l.findRestaurant(restaurantID)
	if err != nil {
		return menu.Meal{}, err
	}
	return rest.CreateHalfMeal(name, firstItem, secondItem, diet, mealOfTheWeek)
}

// CreateFullMeal composes a three-course meal from a restaurant's own menu.
func (l *Ledger) CreateFullMeal(
	restaurantID kernel.UUID,
	name string,
	firstItem string,
	secondItem string,
	thirdItem string,
	diet menu.MealDiet,
	mealOfTheWeek bool,
) (menu.Meal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rest, err := l.findRestaurant(restaurantID)
	if err != nil {
		return menu.Meal{}, err
	}
	return rest.CreateFullMeal(name, firstItem, secondItem, thirdItem, diet, mealOfTheWeek)
}

// SetRestaurantDiscounts updates a restaurant's meal discount factors.
// Existing meals keep the factor they were composed with.
func (l *Ledger) SetRestaurantDiscounts(restaurantID kernel.UUID, generic float64, special float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rest, err := l.findRestaurant(restaurantID)
	if err != nil {
		return err
	}
	return errors.Join(
		rest.SetGenericDiscount(generic),
		rest.SetSpecialDiscount(special),
	)
}

// BroadcastSpecialOffer fans a restaurant's offer message out to every
// customer with notifications enabled. It reports how many customers were
// notified.
func (l *Ledger) BroadcastSpecialOffer(restaurantID kernel.UUID, message string) (int, error) {
	if message == "" {
		return 0, errs.NewValueIsRequiredError("message")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.findRestaurant(restaurantID); err != nil {
		return 0, err
	}

	notified := 0
	for _, cust := range l.customers {
		if cust.NotificationsEnabled() {
			cust.Notify(message)
			notified++
		}
	}
	return notified, nil
}

// Orders returns all placed orders in intake order.
func (l *Ledger) Orders() []*order.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*order.Order, len(l.orderLog))
	copy(out, l.orderLog)
	return out
}

// CompletedOrders returns the delivered orders in completion order.
func (l *Ledger) CompletedOrders() []*order.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*order.Order, len(l.completed))
	copy(out, l.completed)
	return out
}

func (l *Ledger) totalIncome() float64 {
	total := 0.0
	for _, o := range l.completed {
		price, _ := o.FinalPrice()
		total += price
	}
	return total
}

func (l *Ledger) rankCourier(better func(candidate, best *courier.Courier) bool) (*courier.Courier, error) {
	if len(l.courierRoster) == 0 {
		return nil, ErrNoCouriersRegistered
	}

	best := l.courierRoster[0]
	for _, c := range l.courierRoster[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best, nil
}

func (l *Ledger) rankRestaurant(better func(candidate, best int) bool) (*restaurant.Restaurant, error) {
	if len(l.restaurantRoster) == 0 {
		return nil, ErrNoRestaurantsRegistered
	}

	counts := make(map[kernel.UUID]int)
	for _, o := range l.completed {
		counts[o.RestaurantID()]++
	}

	best := l.restaurantRoster[0]
	for _, r := range l.restaurantRoster[1:] {
		if better(counts[r.ID()], counts[best.ID()]) {
			best = r
		}
	}
	return best, nil
}

func (l *Ledger) findCustomer(id kernel.UUID) (*customer.Customer, error) {
	c, ok := l.customers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customerID", id)
	}
	return c, nil
}

func (l *Ledger) findRestaurant(id kernel.UUID) (*restaurant.Restaurant, error) {
	r, ok := l.restaurants[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("restaurantID", id)
	}
	return r, nil
}

func (l *Ledger) findCourier(id kernel.UUID) (*courier.Courier, error) {
	c, ok := l.couriers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("courierID", id)
	}
	return c, nil
}

func (l *Ledger) findOrder(id kernel.UUID) (*order.Order, error) {
	o, ok := l.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return o, nil
}
