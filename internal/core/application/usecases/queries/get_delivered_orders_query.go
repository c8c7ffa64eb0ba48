package queries

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrGetDeliveredOrdersQueryIsNotConstructed = errors.New(
		"GetDeliveredOrdersQuery must be created via NewGetDeliveredOrdersQuery constructor",
	)
)

// GetDeliveredOrdersQuery retrieves delivered orders from the audit trail.
// Reads the database directly rather than the in-memory ledger, so it can
// serve reporting tools without taking the ledger lock.
//
// Example:
//
//	query := NewGetDeliveredOrdersQuery()
//	handler := NewGetDeliveredOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get delivered orders: %w", err)
//	}
//
//	fmt.Printf("delivered %d orders\n", len(orders))
type GetDeliveredOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveredOrdersQuery creates a query for the delivered-order audit trail.
func NewGetDeliveredOrdersQuery() GetDeliveredOrdersQuery {
	return GetDeliveredOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveredOrdersQueryIsNotConstructed if validation fails.
func (q GetDeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveredOrdersQueryIsNotConstructed)
}

// GetDeliveredOrdersQueryResponse represents one delivered order.
// Delivered orders always carry a courier and a final price.
type GetDeliveredOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	CourierID    kernel.UUID
	FinalPrice   float64
}
