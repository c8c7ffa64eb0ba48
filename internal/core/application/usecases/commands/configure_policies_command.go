package commands

import (
	"errors"

	"foodmarket/internal/core/domain/services"
	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

var ErrConfigurePoliciesCommandIsNotConstructed = errors.New(
	"ConfigurePoliciesCommand must be created via NewConfigurePoliciesCommand constructor",
)

// ConfigurePoliciesCommand represents a request to swap the ledger's active
// decision policies at runtime. An empty name leaves that policy slot
// unchanged, so any subset of the three families can be reconfigured in one
// request.
type ConfigurePoliciesCommand struct { //nolint:recvcheck //using for validation
	assignment services.AssignmentPolicyName
	profit     services.ProfitPolicyName
	analytics  services.AnalyticsPolicyName

	guard guard.ConstructorGuard
}

// NewConfigurePoliciesCommand creates a command naming the policies to
// activate. Every non-empty name must identify a known variant.
func NewConfigurePoliciesCommand(
	assignment services.AssignmentPolicyName,
	profit services.ProfitPolicyName,
	analytics services.AnalyticsPolicyName,
) (ConfigurePoliciesCommand, error) {
	command := ConfigurePoliciesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignment(assignment),
		command.setProfit(profit),
		command.setAnalytics(analytics),
	); err != nil {
		return ConfigurePoliciesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfigurePoliciesCommand) Validate() error {
	return c.guard.Validate(ErrConfigurePoliciesCommandIsNotConstructed)
}

// Assignment returns the courier-assignment policy to activate, empty for no change.
func (c ConfigurePoliciesCommand) Assignment() services.AssignmentPolicyName {
	return c.assignment
}

// Profit returns the profit-target policy to activate, empty for no change.
func (c ConfigurePoliciesCommand) Profit() services.ProfitPolicyName {
	return c.profit
}

// Analytics returns the analytics policy to activate, empty for no change.
func (c ConfigurePoliciesCommand) Analytics() services.AnalyticsPolicyName {
	return c.analytics
}

func (c *ConfigurePoliciesCommand) setAssignment(name services.AssignmentPolicyName) error {
	if name == "" {
		return nil
	}
	if _, ok := services.AssignmentPolicyFromName(name); !ok {
		return errs.NewValueIsInvalidError("assignment policy")
	}

	c.assignment = name
	return nil
}

func (c *ConfigurePoliciesCommand) setProfit(name services.ProfitPolicyName) error {
	if name == "" {
		return nil
	}
	if _, ok := services.ProfitTargetPolicyFromName(name); !ok {
		return errs.NewValueIsInvalidError("profit target policy")
	}

	c.profit = name
	return nil
}

func (c *ConfigurePoliciesCommand) setAnalytics(name services.AnalyticsPolicyName) error {
	if name == "" {
		return nil
	}
	if _, ok := services.AnalyticsPolicyFromName(name); !ok {
		return errs.NewValueIsInvalidError("analytics policy")
	}

	c.analytics = name
	return nil
}
