package courier

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrDeliveredCountIsInvalid is returned when restoring a courier with a negative delivery counter.
	ErrDeliveredCountIsInvalid = errs.NewValueIsInvalidError("deliveredCount")
)

// Courier represents a delivery courier in the marketplace.
// It is an aggregate root that manages courier identity, duty state, position
// and the lifetime count of completed deliveries.
//
// Business rules:
//   - Courier must have a valid UUID and a non-empty name
//   - A new courier starts off duty with zero completed deliveries
//   - Only on-duty couriers are eligible for assignment
//   - The delivery counter only grows, and only through CompleteDelivery
//
// Example usage:
//
//	position, _ := kernel.NewCoordinate(3.5, -1.0)
//	courier, err := NewCourier(kernel.NewUUID(), "Alice", position)
//	if err != nil {
//	    // Handle construction error
//	}
//	courier.GoOnDuty()
type Courier struct {
	id             kernel.UUID
	name           string
	location       kernel.Coordinate
	onDuty         bool
	deliveredCount int
	guard          guard.ConstructorGuard
}

// NewCourier creates a new Courier at the given position.
// The courier starts off duty with zero completed deliveries.
//
// Parameters:
//   - id: Unique identifier for the courier (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - location: Current position on the plane (must be a constructed Coordinate)
//
// Returns:
//   - *Courier: A fully initialized courier
//   - error: Validation error if any parameter is invalid (aggregated for multiple issues)
func NewCourier(id kernel.UUID, name string, location kernel.Coordinate) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setLocation(location),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// Unlike NewCourier, which creates fresh off-duty couriers, this constructor
// restores a courier to its previously persisted duty state and delivery count.
func RestoreCourier(
	id kernel.UUID,
	name string,
	location kernel.Coordinate,
	onDuty bool,
	deliveredCount int,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setLocation(location),
		courier.setDeliveredCount(deliveredCount),
	); err != nil {
		return nil, err
	}

	courier.onDuty = onDuty
	return courier, nil
}

// IsEqual compares two couriers for equality based on their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed via a constructor.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Location returns the courier's current position.
func (c *Courier) Location() kernel.Coordinate {
	return c.location
}

// IsOnDuty reports whether the courier is currently accepting deliveries.
func (c *Courier) IsOnDuty() bool {
	return c.onDuty
}

// DeliveredCount returns the number of deliveries the courier has completed.
func (c *Courier) DeliveredCount() int {
	return c.deliveredCount
}

// GoOnDuty makes the courier eligible for assignment.
func (c *Courier) GoOnDuty() {
	c.onDuty = true
}

// GoOffDuty withdraws the courier from assignment.
// Orders already in delivery are unaffected.
func (c *Courier) GoOffDuty() {
	c.onDuty = false
}

// UpdateLocation moves the courier to a new position.
//
// Returns a validation error if the coordinate was not properly constructed.
func (c *Courier) UpdateLocation(location kernel.Coordinate) error {
	return c.setLocation(location)
}

// CompleteDelivery records one finished delivery.
// This is the only way the delivery counter grows; it is called when an order
// the courier carries reaches its destination.
func (c *Courier) CompleteDelivery() {
	c.deliveredCount++
}

// setID sets the courier's unique identifier with validation.
// This is an internal setter used during courier construction.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName sets the courier's name with validation.
// This is an internal setter used during courier construction.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

// setLocation sets the courier's current position with validation.
// This is an internal setter used during construction and location updates.
func (c *Courier) setLocation(location kernel.Coordinate) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

// setDeliveredCount sets the delivery counter during restoration.
func (c *Courier) setDeliveredCount(deliveredCount int) error {
	if deliveredCount < 0 {
		return ErrDeliveredCountIsInvalid
	}

	c.deliveredCount = deliveredCount
	return nil
}
