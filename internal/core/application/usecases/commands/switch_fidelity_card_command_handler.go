package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/ledger"
)

// SwitchFidelityCardCommandHandler rebinds a customer's fidelity card.
type SwitchFidelityCardCommandHandler struct {
	ledger *ledger.Ledger
}

// NewSwitchFidelityCardCommandHandler creates a handler for card switches.
func NewSwitchFidelityCardCommandHandler(l *ledger.Ledger) SwitchFidelityCardCommandHandler {
	return SwitchFidelityCardCommandHandler{ledger: l}
}

// Handle processes the card switch command.
func (h SwitchFidelityCardCommandHandler) Handle(_ context.Context, command SwitchFidelityCardCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.ledger.SwitchFidelityCard(command.CustomerID(), command.CardType())
}
