package customer

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrCardIsRequired is returned when switching to a nil fidelity card.
	ErrCardIsRequired = errs.NewValueIsRequiredError("card")
	// ErrPointsAreInvalid is returned when restoring a customer with a negative point balance.
	ErrPointsAreInvalid = errs.NewValueIsInvalidError("points")
)

// Customer represents a buyer in the marketplace.
// It is an aggregate root that manages customer identity, delivery address,
// the active fidelity card with its point balance, and offer notifications.
//
// Business rules:
//   - Customer must have a valid UUID and a non-empty name
//   - A new customer holds the basic card, zero points, notifications disabled
//   - Switching the fidelity card forfeits the accumulated points
//   - Fidelity discounts touch only the customer's own state
type Customer struct {
	id       kernel.UUID
	name     string
	location kernel.Coordinate

	card   FidelityCard
	points int

	notifyEnabled bool
	notifications []string

	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer at the given delivery address.
// The customer starts on the basic fidelity card with zero points and
// notifications disabled.
func NewCustomer(id kernel.UUID, name string, location kernel.Coordinate) (*Customer, error) {
	customer := &Customer{
		card:  NewBasicCard(),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setLocation(location),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer aggregate from persistent storage,
// including the active fidelity card, point balance and notification opt-in.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	location kernel.Coordinate,
	card FidelityCard,
	points int,
	notifyEnabled bool,
) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setLocation(location),
		customer.setCard(card),
		customer.setPoints(points),
	); err != nil {
		return nil, err
	}

	customer.notifyEnabled = notifyEnabled
	return customer, nil
}

// IsEqual compares two customers for equality based on their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Customer was properly constructed via a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the unique identifier of the customer.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the customer.
func (c *Customer) Name() string {
	return c.name
}

// Location returns the customer's delivery address.
func (c *Customer) Location() kernel.Coordinate {
	return c.location
}

// Card returns the customer's active fidelity card.
func (c *Customer) Card() FidelityCard {
	return c.card
}

// Points returns the customer's accumulated fidelity points.
// Only the points card earns and redeems points.
func (c *Customer) Points() int {
	return c.points
}

// ApplyFidelityDiscount computes the final price for an order of the given
// full price through the active fidelity card. The card may read and mutate
// the customer's point balance and append a notification, but nothing else.
//
// The full price must be non-negative.
func (c *Customer) ApplyFidelityDiscount(fullPrice float64) (float64, error) {
	if fullPrice < 0 {
		return 0, errs.NewValueIsInvalidError("fullPrice")
	}

	return c.card.apply(c, fullPrice), nil
}

// SwitchCard replaces the customer's fidelity card.
// Accumulated points are forfeited on every switch, including a switch
// between two point-bearing cards.
func (c *Customer) SwitchCard(card FidelityCard) error {
	if err := c.setCard(card); err != nil {
		return err
	}

	c.points = 0
	return nil
}

// NotificationsEnabled reports whether the customer receives special offers.
func (c *Customer) NotificationsEnabled() bool {
	return c.notifyEnabled
}

// EnableNotifications subscribes the customer to special-offer messages.
func (c *Customer) EnableNotifications() {
	c.notifyEnabled = true
}

// DisableNotifications unsubscribes the customer from special-offer messages.
func (c *Customer) DisableNotifications() {
	c.notifyEnabled = false
}

// Notify records a message for the customer.
// Lottery wins are always recorded; special offers reach the customer only
// through the ledger's fan-out, which checks the opt-in first.
func (c *Customer) Notify(message string) {
	c.notifications = append(c.notifications, message)
}

// Notifications returns a copy of the messages recorded for the customer.
func (c *Customer) Notifications() []string {
	out := make([]string, len(c.notifications))
	copy(out, c.notifications)
	return out
}

// setID sets the customer's unique identifier with validation.
// This is an internal setter used during customer construction.
func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName sets the customer's name with validation.
// This is an internal setter used during customer construction.
func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

// setLocation sets the customer's delivery address with validation.
// This is an internal setter used during customer construction.
func (c *Customer) setLocation(location kernel.Coordinate) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

// setCard sets the active fidelity card with validation.
func (c *Customer) setCard(card FidelityCard) error {
	if card == nil {
		return ErrCardIsRequired
	}

	c.card = card
	return nil
}

// setPoints sets the point balance during restoration.
func (c *Customer) setPoints(points int) error {
	if points < 0 {
		return ErrPointsAreInvalid
	}

	c.points = points
	return nil
}
