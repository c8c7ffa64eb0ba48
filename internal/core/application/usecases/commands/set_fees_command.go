package commands

import (
	"errors"

	"foodmarket/internal/core/domain/services"
	"foodmarket/internal/pkg/guard"
)

var ErrSetFeesCommandIsNotConstructed = errors.New(
	"SetFeesCommand must be created via NewSetFeesCommand constructor",
)

// SetFeesCommand represents a request to replace the marketplace fee
// schedule: service fee, markup percentage and delivery cost.
type SetFeesCommand struct { //nolint:recvcheck //using for validation
	fees services.FeeSchedule

	guard guard.ConstructorGuard
}

// NewSetFeesCommand creates a command carrying the new fee schedule.
// Each component must be non-negative and finite.
func NewSetFeesCommand(serviceFee, markup, deliveryCost float64) (SetFeesCommand, error) {
	fees, err := services.NewFeeSchedule(serviceFee, markup, deliveryCost)
	if err != nil {
		return SetFeesCommand{}, err
	}

	return SetFeesCommand{
		fees:  fees,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetFeesCommand) Validate() error {
	return c.guard.Validate(ErrSetFeesCommandIsNotConstructed)
}

// Fees returns the new fee schedule.
func (c SetFeesCommand) Fees() services.FeeSchedule {
	return c.fees
}
