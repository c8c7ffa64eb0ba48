package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var ErrSetCourierDutyCommandIsNotConstructed = errors.New(
	"SetCourierDutyCommand must be created via NewSetCourierDutyCommand constructor",
)

// SetCourierDutyCommand represents a request to put a courier on or off duty.
type SetCourierDutyCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	onDuty    bool

	guard guard.ConstructorGuard
}

// NewSetCourierDutyCommand creates a command to change a courier's duty state.
func NewSetCourierDutyCommand(courierID kernel.UUID, onDuty bool) (SetCourierDutyCommand, error) {
	command := SetCourierDutyCommand{
		onDuty: onDuty,
		guard:  guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return SetCourierDutyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierDutyCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierDutyCommandIsNotConstructed)
}

// CourierID returns the unique identifier for the courier.
func (c SetCourierDutyCommand) CourierID() kernel.UUID {
	return c.courierID
}

// OnDuty returns the requested duty state.
func (c SetCourierDutyCommand) OnDuty() bool {
	return c.onDuty
}

func (c *SetCourierDutyCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
