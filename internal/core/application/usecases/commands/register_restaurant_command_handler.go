package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/ledger"
	"foodmarket/internal/core/domain/model/restaurant"
)

// RegisterRestaurantCommandHandler adds a restaurant to the ledger.
// Restaurants are decision-time state only; they carry no audit record.
type RegisterRestaurantCommandHandler struct {
	ledger *ledger.Ledger
}

// NewRegisterRestaurantCommandHandler creates a handler for restaurant registration.
func NewRegisterRestaurantCommandHandler(l *ledger.Ledger) RegisterRestaurantCommandHandler {
	return RegisterRestaurantCommandHandler{ledger: l}
}

// Handle processes the restaurant registration command.
func (h RegisterRestaurantCommandHandler) Handle(_ context.Context, command RegisterRestaurantCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newRestaurant, err := restaurant.NewRestaurant(command.RestaurantID(), command.Name(), command.Location())
	if err != nil {
		return err
	}

	return h.ledger.RegisterRestaurant(newRestaurant)
}
