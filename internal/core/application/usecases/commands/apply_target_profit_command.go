package commands

import (
	"errors"

	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

var ErrApplyTargetProfitCommandIsNotConstructed = errors.New(
	"ApplyTargetProfitCommand must be created via NewApplyTargetProfitCommand constructor",
)

// ApplyTargetProfitCommand represents a request to solve the fee schedule
// for a target profit over the completed order history.
type ApplyTargetProfitCommand struct { //nolint:recvcheck //using for validation
	targetProfit float64

	guard guard.ConstructorGuard
}

// NewApplyTargetProfitCommand creates a command carrying the target profit.
// The target must be non-negative.
func NewApplyTargetProfitCommand(targetProfit float64) (ApplyTargetProfitCommand, error) {
	if targetProfit < 0 {
		return ApplyTargetProfitCommand{}, errs.NewValueIsInvalidError("targetProfit")
	}

	return ApplyTargetProfitCommand{
		targetProfit: targetProfit,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyTargetProfitCommand) Validate() error {
	return c.guard.Validate(ErrApplyTargetProfitCommandIsNotConstructed)
}

// TargetProfit returns the profit the solved fees should achieve.
func (c ApplyTargetProfitCommand) TargetProfit() float64 {
	return c.targetProfit
}
