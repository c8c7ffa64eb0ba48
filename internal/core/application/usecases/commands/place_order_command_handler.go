package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/ledger"
	"foodmarket/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler composes an order from the restaurant's menu,
// pushes it through the ledger's intake (fidelity discount plus courier
// assignment) and writes the audit record.
type PlaceOrderCommandHandler struct {
	ledger     *ledger.Ledger
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(l *ledger.Ledger, uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		ledger:     l,
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// The order is delivered to the customer's registered address. Items and
// meals must exist on the restaurant's menu under the given names.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	cust, err := h.ledger.CustomerByID(command.CustomerID())
	if err != nil {
		return err
	}
	rest, err := h.ledger.RestaurantByID(command.RestaurantID())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(command.OrderID(), cust.ID(), rest.ID(), cust.Location())
	if err != nil {
		return err
	}

	for _, name := range command.ItemNames() {
		item, itemErr := rest.MenuItemByName(name)
		if itemErr != nil {
			return itemErr
		}
		if itemErr = newOrder.AddItem(item); itemErr != nil {
			return itemErr
		}
	}
	for _, name := range command.MealNames() {
		meal, mealErr := rest.MealByName(name)
		if mealErr != nil {
			return mealErr
		}
		if mealErr = newOrder.AddMeal(meal); mealErr != nil {
			return mealErr
		}
	}

	if err = h.ledger.PlaceOrder(newOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
