package queries

import (
	"errors"

	"foodmarket/internal/pkg/guard"
)

var (
	ErrGetMenuAnalyticsQueryIsNotConstructed = errors.New(
		"GetMenuAnalyticsQuery must be created via NewGetMenuAnalyticsQuery constructor",
	)
)

// GetMenuAnalyticsQuery ranks menu offerings by popularity across the
// delivered-order history, using the analytics policy currently in force.
type GetMenuAnalyticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuAnalyticsQuery creates a query for the menu popularity ranking.
func NewGetMenuAnalyticsQuery() GetMenuAnalyticsQuery {
	return GetMenuAnalyticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuAnalyticsQueryIsNotConstructed if validation fails.
func (q GetMenuAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuAnalyticsQueryIsNotConstructed)
}

// GetMenuAnalyticsQueryResponse is one entry of the popularity ranking.
type GetMenuAnalyticsQueryResponse struct {
	Name  string
	Count int
}
