package queries

import (
	"context"

	"foodmarket/internal/core/domain/model/ledger"
)

// GetActivityRankingsQueryHandler assembles the activity rankings from the
// ledger rosters.
type GetActivityRankingsQueryHandler struct {
	ledger *ledger.Ledger
}

// NewGetActivityRankingsQueryHandler creates a handler for activity ranking queries.
func NewGetActivityRankingsQueryHandler(l *ledger.Ledger) GetActivityRankingsQueryHandler {
	return GetActivityRankingsQueryHandler{ledger: l}
}

// Handle executes the query.
// Returns ledger.ErrNoCouriersRegistered or ledger.ErrNoRestaurantsRegistered
// when the corresponding roster is empty.
func (h GetActivityRankingsQueryHandler) Handle(
	_ context.Context,
	query GetActivityRankingsQuery,
) (GetActivityRankingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActivityRankingsQueryResponse{}, err
	}

	mostActive, err := h.ledger.MostActiveCourier()
	if err != nil {
		return GetActivityRankingsQueryResponse{}, err
	}
	leastActive, err := h.ledger.LeastActiveCourier()
	if err != nil {
		return GetActivityRankingsQueryResponse{}, err
	}
	mostSelling, err := h.ledger.MostSellingRestaurant()
	if err != nil {
		return GetActivityRankingsQueryResponse{}, err
	}
	leastSelling, err := h.ledger.LeastSellingRestaurant()
	if err != nil {
		return GetActivityRankingsQueryResponse{}, err
	}

	return GetActivityRankingsQueryResponse{
		MostActiveCourier: CourierActivity{
			ID:             mostActive.ID(),
			Name:           mostActive.Name(),
			DeliveredCount: mostActive.DeliveredCount(),
		},
		LeastActiveCourier: CourierActivity{
			ID:             leastActive.ID(),
			Name:           leastActive.Name(),
			DeliveredCount: leastActive.DeliveredCount(),
		},
		MostSellingRestaurant: RestaurantActivity{
			ID:   mostSelling.ID(),
			Name: mostSelling.Name(),
		},
		LeastSellingRestaurant: RestaurantActivity{
			ID:   leastSelling.ID(),
			Name: leastSelling.Name(),
		},
	}, nil
}
