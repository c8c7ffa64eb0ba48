package queries

import (
	"context"

	"foodmarket/internal/core/domain/model/ledger"
)

// GetMenuAnalyticsQueryHandler runs the active analytics policy over the
// delivered-order history held by the ledger.
type GetMenuAnalyticsQueryHandler struct {
	ledger *ledger.Ledger
}

// NewGetMenuAnalyticsQueryHandler creates a handler for menu analytics queries.
func NewGetMenuAnalyticsQueryHandler(l *ledger.Ledger) GetMenuAnalyticsQueryHandler {
	return GetMenuAnalyticsQueryHandler{ledger: l}
}

// Handle executes the query.
// Returns an empty slice when nothing has been delivered yet.
func (h GetMenuAnalyticsQueryHandler) Handle(
	_ context.Context,
	query GetMenuAnalyticsQuery,
) ([]GetMenuAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.ledger.MenuAnalytics()
	if err != nil {
		return nil, err
	}

	ranking := make([]GetMenuAnalyticsQueryResponse, 0, len(entries))
	for _, entry := range entries {
		ranking = append(ranking, GetMenuAnalyticsQueryResponse{
			Name:  entry.Name,
			Count: entry.Count,
		})
	}

	return ranking, nil
}
