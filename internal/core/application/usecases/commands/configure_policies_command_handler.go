package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/ledger"
)

// ConfigurePoliciesCommandHandler swaps the ledger's active decision policies.
// New policies take effect for all subsequent calls; completed computations
// are unaffected.
type ConfigurePoliciesCommandHandler struct {
	ledger *ledger.Ledger
}

// NewConfigurePoliciesCommandHandler creates a handler for policy configuration.
func NewConfigurePoliciesCommandHandler(l *ledger.Ledger) ConfigurePoliciesCommandHandler {
	return ConfigurePoliciesCommandHandler{ledger: l}
}

// Handle processes the policy configuration command.
// Names were checked at command construction, so the swaps cannot fail
// halfway through.
func (h ConfigurePoliciesCommandHandler) Handle(_ context.Context, command ConfigurePoliciesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if name := command.Assignment(); name != "" {
		if err := h.ledger.UseAssignmentPolicy(name); err != nil {
			return err
		}
	}
	if name := command.Profit(); name != "" {
		if err := h.ledger.UseProfitTargetPolicy(name); err != nil {
			return err
		}
	}
	if name := command.Analytics(); name != "" {
		if err := h.ledger.UseAnalyticsPolicy(name); err != nil {
			return err
		}
	}

	return nil
}
