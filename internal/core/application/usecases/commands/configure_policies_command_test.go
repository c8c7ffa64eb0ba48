package commands_test

import (
	"testing"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/domain/model/ledger"
	"foodmarket/internal/core/domain/services"
	"foodmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigurePoliciesCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewConfigurePoliciesCommand(
		services.AssignmentFairOccupation,
		services.ProfitByMarkup,
		services.AnalyticsLeastOrderedItem,
	)
	require.NoError(t, err)
	assert.Equal(t, services.AssignmentFairOccupation, cmd.Assignment())
	assert.Equal(t, services.ProfitByMarkup, cmd.Profit())
	assert.Equal(t, services.AnalyticsLeastOrderedItem, cmd.Analytics())
}

func TestNewConfigurePoliciesCommand_PartialInput(t *testing.T) {
	cmd, err := commands.NewConfigurePoliciesCommand(services.AssignmentFastest, "", "")
	require.NoError(t, err)
	assert.Equal(t, services.AssignmentFastest, cmd.Assignment())
	assert.Empty(t, cmd.Profit())
	assert.Empty(t, cmd.Analytics())
}

func TestNewConfigurePoliciesCommand_UnknownName(t *testing.T) {
	_, err := commands.NewConfigurePoliciesCommand("RANDOM", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestConfigurePoliciesCommandHandler_Handle_Success(t *testing.T) {
	l := ledger.NewLedger()
	cmd, err := commands.NewConfigurePoliciesCommand(
		services.AssignmentFairOccupation,
		"",
		services.AnalyticsMostOrderedItem,
	)
	require.NoError(t, err)

	h := commands.NewConfigurePoliciesCommandHandler(l)
	require.NoError(t, h.Handle(t.Context(), cmd))

	assignment, profit, analytics := l.ActivePolicies()
	assert.Equal(t, services.AssignmentFairOccupation, assignment)
	assert.Equal(t, services.ProfitByServiceFee, profit)
	assert.Equal(t, services.AnalyticsMostOrderedItem, analytics)
}

func TestConfigurePoliciesCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewConfigurePoliciesCommandHandler(ledger.NewLedger())
	require.Error(t, h.Handle(t.Context(), commands.ConfigurePoliciesCommand{}))
}
