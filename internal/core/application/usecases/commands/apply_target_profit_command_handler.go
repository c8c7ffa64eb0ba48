package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/ledger"
)

// ApplyTargetProfitCommandHandler runs the ledger's active profit-target
// policy and commits the solved fee schedule. An unreachable target leaves
// the fees untouched; the error is the caller's signal.
type ApplyTargetProfitCommandHandler struct {
	ledger *ledger.Ledger
}

// NewApplyTargetProfitCommandHandler creates a handler for profit targeting.
func NewApplyTargetProfitCommandHandler(l *ledger.Ledger) ApplyTargetProfitCommandHandler {
	return ApplyTargetProfitCommandHandler{ledger: l}
}

// Handle processes the profit target command.
func (h ApplyTargetProfitCommandHandler) Handle(_ context.Context, command ApplyTargetProfitCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.ledger.ApplyTargetProfit(command.TargetProfit())
}
