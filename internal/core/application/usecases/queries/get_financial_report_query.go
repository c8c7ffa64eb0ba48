// Package queries contains read operations for retrieving marketplace state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"foodmarket/internal/core/domain/services"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrGetFinancialReportQueryIsNotConstructed = errors.New(
		"GetFinancialReportQuery must be created via NewGetFinancialReportQuery constructor",
	)
)

// GetFinancialReportQuery retrieves the financial snapshot of the marketplace.
// Returns income and profit figures over delivered orders together with the
// fee schedule and decision policies currently in force.
//
// Example:
//
//	query := NewGetFinancialReportQuery()
//	handler := NewGetFinancialReportQueryHandler(ledger)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build financial report: %w", err)
//	}
//
//	fmt.Printf("income %.2f, profit %.2f\n", report.TotalIncome, report.TotalProfit)
type GetFinancialReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFinancialReportQuery creates a query for the financial snapshot.
// This is a parameterless query over the full delivered-order history.
func NewGetFinancialReportQuery() GetFinancialReportQuery {
	return GetFinancialReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFinancialReportQueryIsNotConstructed if validation fails.
func (q GetFinancialReportQuery) Validate() error {
	return q.guard.Validate(ErrGetFinancialReportQueryIsNotConstructed)
}

// GetFinancialReportQueryResponse is the financial read model.
//
// AverageIncomePerCustomer is zero while no orders have been delivered;
// the other aggregates are zero-valued in that case as well.
type GetFinancialReportQueryResponse struct {
	TotalIncome              float64
	TotalProfit              float64
	AverageIncomePerCustomer float64
	ServiceFee               float64
	Markup                   float64
	DeliveryCost             float64
	AssignmentPolicy         services.AssignmentPolicyName
	ProfitPolicy             services.ProfitPolicyName
	AnalyticsPolicy          services.AnalyticsPolicyName
}
