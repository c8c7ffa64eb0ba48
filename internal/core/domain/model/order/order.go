package order

import (
	"errors"
	"fmt"
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/menu"
	"foodmarket/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrFinalPriceAlreadySet is returned when attempting to price an order twice.
	// The final price is written exactly once, when the order is accepted.
	ErrFinalPriceAlreadySet = errors.New("final price is already set")

	// ErrCourierIsNotAssigned is returned when starting delivery of an order
	// that has no courier.
	ErrCourierIsNotAssigned = errors.New("order has no assigned courier")

	// ErrOrderIsNotEditable is returned when adding contents to an order that
	// already left the Created status.
	ErrOrderIsNotEditable = errors.New("order contents can only change while the order is created")
)

// Order represents a customer's order in the marketplace. It is the aggregate
// root that manages the order lifecycle from acceptance through preparation
// and delivery, or cancellation.
//
// Order follows these invariants:
//   - Must reference a valid customer and restaurant
//   - Must have a valid delivery location
//   - The final price is non-negative and written exactly once
//   - A courier must be assigned before delivery starts
//   - Status transitions follow the defined state machine
//   - Can only be created through NewOrder constructor
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.UUID

	// deliveryLocation is the customer's address at order time
	deliveryLocation kernel.Coordinate

	// items and meals are the order's contents, captured at order time
	items []menu.MenuItem
	meals []menu.Meal

	// finalPrice is the discounted amount charged to the customer (nil until priced)
	finalPrice *float64

	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: The ordering customer (must be valid UUID)
//   - restaurantID: The restaurant preparing the order (must be valid UUID)
//   - deliveryLocation: Delivery destination (must be a constructed Coordinate)
//
// The constructor validates all inputs and ensures the order starts in
// Created status with no courier and no final price.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryLocation kernel.Coordinate,
) (*Order, error) {
	order := &Order{
		status:        Created,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including its
// courier assignment, final price and lifecycle status.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	courierID *kernel.UUID,
	deliveryLocation kernel.Coordinate,
	createdAt time.Time,
	finalPrice *float64,
	status Status,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDeliveryLocation(deliveryLocation),
		order.setCreatedAt(createdAt),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		id := *courierID
		order.courierID = &id
	}

	if finalPrice != nil {
		if err := order.SetFinalPrice(*finalPrice); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant preparing the order.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DeliveryLocation returns the delivery destination for the order.
func (o *Order) DeliveryLocation() kernel.Coordinate {
	return o.deliveryLocation
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the moment the order was accepted.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Courier returns the assigned courier's ID.
// Returns nil if no courier is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Items returns a copy of the à la carte items in the order.
func (o *Order) Items() []menu.MenuItem {
	items := make([]menu.MenuItem, len(o.items))
	copy(items, o.items)
	return items
}

// Meals returns a copy of the meal bundles in the order.
func (o *Order) Meals() []menu.Meal {
	meals := make([]menu.Meal, len(o.meals))
	copy(meals, o.meals)
	return meals
}

// AddItem puts an à la carte item into the order.
// Contents can only change while the order is in Created status.
func (o *Order) AddItem(item menu.MenuItem) error {
	if o.status != Created {
		return ErrOrderIsNotEditable
	}
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// AddMeal puts a meal bundle into the order.
// Contents can only change while the order is in Created status.
func (o *Order) AddMeal(meal menu.Meal) error {
	if o.status != Created {
		return ErrOrderIsNotEditable
	}
	if err := meal.Validate(); err != nil {
		return err
	}

	o.meals = append(o.meals, meal)
	return nil
}

// FullPrice returns the undiscounted total of the order's contents:
// item prices plus meal bundle prices.
func (o *Order) FullPrice() float64 {
	total := 0.0
	for _, item := range o.items {
		total += item.Price()
	}
	for _, meal := range o.meals {
		total += meal.Price()
	}
	return total
}

// FinalPrice returns the discounted amount charged to the customer and
// whether the order has been priced yet.
func (o *Order) FinalPrice() (float64, bool) {
	if o.finalPrice == nil {
		return 0, false
	}
	return *o.finalPrice, true
}

// SetFinalPrice writes the discounted amount charged to the customer.
//
// Business rules:
//   - The price must be non-negative
//   - The price is written exactly once; later writes fail
func (o *Order) SetFinalPrice(price float64) error {
	if o.finalPrice != nil {
		return ErrFinalPriceAlreadySet
	}
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"finalPrice is invalid",
			fmt.Errorf("%v is negative", price),
		)
	}

	o.finalPrice = &price
	return nil
}

// Assign binds the order to a courier.
//
// Business rules:
//   - The courier ID must be valid
//   - The order must not have left the restaurant (Created, Preparing or
//     ReadyForDelivery); reassignment before departure is allowed
//
// Assignment does not advance the lifecycle; the order continues through
// preparation and departs via StartDelivery.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if err := o.status.ValidateAssign(); err != nil {
		return err
	}

	o.courierID = &courierID
	return nil
}

// StartPreparing moves the order from Created to Preparing.
func (o *Order) StartPreparing() error {
	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady moves the order from Preparing to ReadyForDelivery.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartDelivery moves the order from ReadyForDelivery to InDelivery.
// A courier must already be assigned.
func (o *Order) StartDelivery() error {
	if o.courierID == nil {
		return ErrCourierIsNotAssigned
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order as delivered.
//
// The order must be in InDelivery status. Delivered is a final state.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel abandons the order.
//
// The order must not have left the restaurant: cancellation is allowed from
// Created, Preparing and ReadyForDelivery only. Cancelled is a final state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer's identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setRestaurantID validates and sets the restaurant's identifier.
// This is a private method used only during construction.
func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

// setDeliveryLocation validates and sets the delivery destination.
// This is a private method used only during construction.
func (o *Order) setDeliveryLocation(deliveryLocation kernel.Coordinate) error {
	if err := deliveryLocation.Validate(); err != nil {
		return err
	}
	o.deliveryLocation = deliveryLocation
	return nil
}

// setCreatedAt validates and sets the creation timestamp during restoration.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// setStatus validates and sets the lifecycle status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
