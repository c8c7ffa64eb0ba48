package kernel

import (
	"errors"
	"fmt"
	"math"

	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

// ErrCoordinateIsNotConstructed is returned when attempting to use an improperly
// initialized Coordinate. Coordinates must be created via NewCoordinate.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via the NewCoordinate constructor")

// Coordinate represents a point on the continuous Euclidean plane where
// customers, restaurants and couriers are located. Both components must be
// finite real numbers; NaN and infinities are rejected at construction.
//
// Coordinate is an immutable value object. The zero value is invalid and will
// fail validation - use the constructor to create instances.
//
// Example:
//
//	pos, err := kernel.NewCoordinate(3.5, -7.25)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Position: %s", pos) // Output: Coordinate(3.5,-7.25)
type Coordinate struct { //nolint:recvcheck //using for validation
	x     float64
	y     float64
	guard guard.ConstructorGuard
}

// NewCoordinate creates a new Coordinate with the given components.
// Returns an error if either component is NaN or infinite.
//
// Example:
//
//	pos, err := NewCoordinate(3.5, -7.25)
//	if err != nil {
//	    log.Fatal("Invalid coordinate:", err)
//	}
func NewCoordinate(x float64, y float64) (Coordinate, error) {
	coord := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(coord.setX(x), coord.setY(y)); err != nil {
		return Coordinate{}, err
	}

	return coord, nil
}

// Validate checks if the Coordinate was properly constructed using the constructor.
// The zero value of Coordinate is invalid and will fail this validation.
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// X returns the horizontal component of the coordinate.
func (c Coordinate) X() float64 {
	return c.x
}

// Y returns the vertical component of the coordinate.
func (c Coordinate) Y() float64 {
	return c.y
}

// String returns a human-readable representation in the format "Coordinate(x,y)".
// This method implements the fmt.Stringer interface.
func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%v,%v)", c.x, c.y)
}

// IsEqual compares two coordinates for equality.
// Two coordinates are equal if both components match exactly.
// Both coordinates must be properly constructed for the comparison to succeed.
//
// Parameters:
//   - other: The Coordinate to compare with
//
// Returns:
//   - bool: true if coordinates are equal, false otherwise
//   - error: Validation error if either coordinate is improperly constructed
func (c Coordinate) IsEqual(other Coordinate) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c.x == other.x && c.y == other.y, nil
}

// Distance calculates the Euclidean distance between two coordinates:
// sqrt((x1-x2)^2 + (y1-y2)^2). The distance is symmetric and non-negative.
// Both coordinates must be properly constructed for the calculation to succeed.
//
// Parameters:
//   - other: The Coordinate to calculate distance to
//
// Returns:
//   - float64: The Euclidean distance between the two coordinates
//   - error: Validation error if either coordinate is improperly constructed
//
// Example:
//
//	a, _ := NewCoordinate(0, 0)
//	b, _ := NewCoordinate(3, 4)
//
//	distance, err := a.Distance(b)
//	// distance = 5, err = nil
func (c Coordinate) Distance(other Coordinate) (float64, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return math.Hypot(c.x-other.x, c.y-other.y), nil
}

// setX sets the x component with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers. Although mixing receiver types is generally not recommended, in this
// case we use pointer receivers for these private setters to enable
// self-encapsulated validation during object construction.
func (c *Coordinate) setX(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return errs.NewValueIsInvalidError("x")
	}

	c.x = x
	return nil
}

// setY sets the y component with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers. Although mixing receiver types is generally not recommended, in this
// case we use pointer receivers for these private setters to enable
// self-encapsulated validation during object construction.
func (c *Coordinate) setY(y float64) error {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return errs.NewValueIsInvalidError("y")
	}

	c.y = y
	return nil
}
