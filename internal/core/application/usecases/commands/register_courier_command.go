package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrRegisterCourierCommandIsNotConstructed = errors.New(
		"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
	)
	ErrCourierNameIsRequired = errors.New("courier name is required")
)

// RegisterCourierCommand represents a request to add a courier to the fleet.
// The courier starts off duty at the given position.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	location  kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a command to register a new courier.
// Validates that the courier ID is valid, the name is not empty and the
// starting position is a finite coordinate.
func NewRegisterCourierCommand(courierID kernel.UUID, name string, x, y float64) (RegisterCourierCommand, error) {
	command := RegisterCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setName(name),
		command.setLocation(x, y),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// CourierID returns the unique identifier for the courier.
func (c RegisterCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier's human-readable name.
func (c RegisterCourierCommand) Name() string {
	return c.name
}

// Location returns the courier's starting position.
func (c RegisterCourierCommand) Location() kernel.Coordinate {
	return c.location
}

func (c *RegisterCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *RegisterCourierCommand) setName(name string) error {
	if name == "" {
		return ErrCourierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterCourierCommand) setLocation(x, y float64) error {
	location, err := kernel.NewCoordinate(x, y)
	if err != nil {
		return err
	}

	c.location = location
	return nil
}
