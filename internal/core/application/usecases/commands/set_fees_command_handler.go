package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/ledger"
)

// SetFeesCommandHandler replaces the ledger's fee schedule.
type SetFeesCommandHandler struct {
	ledger *ledger.Ledger
}

// NewSetFeesCommandHandler creates a handler for fee schedule updates.
func NewSetFeesCommandHandler(l *ledger.Ledger) SetFeesCommandHandler {
	return SetFeesCommandHandler{ledger: l}
}

// Handle processes the fee update command. The three components are
// committed in one step.
func (h SetFeesCommandHandler) Handle(_ context.Context, command SetFeesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.ledger.SetFees(command.Fees())
}
