package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// RegisterCustomerCommand represents a request to add a customer to the
// marketplace. The customer starts on the basic fidelity card.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	location   kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a new customer
// with a delivery address at the given position.
func NewRegisterCustomerCommand(customerID kernel.UUID, name string, x, y float64) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setName(name),
		command.setLocation(x, y),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the customer.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's human-readable name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Location returns the customer's delivery address.
func (c RegisterCustomerCommand) Location() kernel.Coordinate {
	return c.location
}

func (c *RegisterCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterCustomerCommand) setLocation(x, y float64) error {
	location, err := kernel.NewCoordinate(x, y)
	if err != nil {
		return err
	}

	c.location = location
	return nil
}
