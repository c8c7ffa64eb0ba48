package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrRegisterRestaurantCommandIsNotConstructed = errors.New(
		"RegisterRestaurantCommand must be created via NewRegisterRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
)

// RegisterRestaurantCommand represents a request to add a restaurant to the
// marketplace. The restaurant starts with an empty menu and the default
// discount factors.
type RegisterRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	location     kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewRegisterRestaurantCommand creates a command to register a new restaurant
// at the given position.
func NewRegisterRestaurantCommand(restaurantID kernel.UUID, name string, x, y float64) (RegisterRestaurantCommand, error) {
	command := RegisterRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setName(name),
		command.setLocation(x, y),
	); err != nil {
		return RegisterRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the unique identifier for the restaurant.
func (c RegisterRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant's human-readable name.
func (c RegisterRestaurantCommand) Name() string {
	return c.name
}

// Location returns the restaurant's position.
func (c RegisterRestaurantCommand) Location() kernel.Coordinate {
	return c.location
}

func (c *RegisterRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *RegisterRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterRestaurantCommand) setLocation(x, y float64) error {
	location, err := kernel.NewCoordinate(x, y)
	if err != nil {
		return err
	}

	c.location = location
	return nil
}
