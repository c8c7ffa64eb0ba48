package queries

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrGetActivityRankingsQueryIsNotConstructed = errors.New(
		"GetActivityRankingsQuery must be created via NewGetActivityRankingsQuery constructor",
	)
)

// GetActivityRankingsQuery retrieves the most and least active participants
// of the marketplace: couriers ranked by completed deliveries and
// restaurants ranked by delivered orders.
type GetActivityRankingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActivityRankingsQuery creates a query for the activity rankings.
func NewGetActivityRankingsQuery() GetActivityRankingsQuery {
	return GetActivityRankingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActivityRankingsQueryIsNotConstructed if validation fails.
func (q GetActivityRankingsQuery) Validate() error {
	return q.guard.Validate(ErrGetActivityRankingsQueryIsNotConstructed)
}

// CourierActivity identifies a courier together with its delivery counter.
type CourierActivity struct {
	ID             kernel.UUID
	Name           string
	DeliveredCount int
}

// RestaurantActivity identifies a restaurant in the selling ranking.
type RestaurantActivity struct {
	ID   kernel.UUID
	Name string
}

// GetActivityRankingsQueryResponse is the activity read model.
// Ties are resolved in favor of the earliest registered participant.
type GetActivityRankingsQueryResponse struct {
	MostActiveCourier      CourierActivity
	LeastActiveCourier     CourierActivity
	MostSellingRestaurant  RestaurantActivity
	LeastSellingRestaurant RestaurantActivity
}
