package queries

import (
	"context"
	"errors"

	"foodmarket/internal/core/domain/model/ledger"
	"foodmarket/internal/pkg/errs"
)

// GetFinancialReportQueryHandler builds the financial snapshot from the ledger.
// Reads live aggregates rather than the audit trail so the report always
// reflects the current fee schedule.
type GetFinancialReportQueryHandler struct {
	ledger *ledger.Ledger
}

// NewGetFinancialReportQueryHandler creates a handler for financial reports.
func NewGetFinancialReportQueryHandler(l *ledger.Ledger) GetFinancialReportQueryHandler {
	return GetFinancialReportQueryHandler{ledger: l}
}

// Handle executes the query and assembles the report.
// A marketplace with no delivered orders yields a zero-valued report
// rather than an error.
func (h GetFinancialReportQueryHandler) Handle(
	_ context.Context,
	query GetFinancialReportQuery,
) (GetFinancialReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFinancialReportQueryResponse{}, err
	}

	average, err := h.ledger.AverageIncomePerCustomer()
	if err != nil {
		if !errors.Is(err, errs.ErrNoCompletedOrders) {
			return GetFinancialReportQueryResponse{}, err
		}
		average = 0
	}

	fees := h.ledger.Fees()
	assignment, profit, analytics := h.ledger.ActivePolicies()

	return GetFinancialReportQueryResponse{
		TotalIncome:              h.ledger.TotalIncome(),
		TotalProfit:              h.ledger.TotalProfit(),
		AverageIncomePerCustomer: average,
		ServiceFee:               fees.ServiceFee(),
		Markup:                   fees.Markup(),
		DeliveryCost:             fees.DeliveryCost(),
		AssignmentPolicy:         assignment,
		ProfitPolicy:             profit,
		AnalyticsPolicy:          analytics,
	}, nil
}
