package queries

import (
	"context"

	"foodmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveredOrdersQueryHandler retrieves delivered orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDeliveredOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveredOrdersQueryHandler creates a handler for delivered-order queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveredOrdersQueryHandler(db *gorm.DB) GetDeliveredOrdersQueryHandler {
	return GetDeliveredOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve delivered orders.
// Returns a slice of order read models sorted by ID.
func (h GetDeliveredOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveredOrdersQuery,
) ([]GetDeliveredOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetDeliveredOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			restaurant_id,
			courier_id,
			final_price
		FROM orders
		WHERE status = 'Delivered'
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetDeliveredOrdersQueryResponse
		var id, customerID, restaurantID, courierID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&courierID,
			&response.FinalPrice,
		)
		if err != nil {
			return nil, err
		}

		response.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		response.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return nil, err
		}
		response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:])
		if err != nil {
			return nil, err
		}
		response.CourierID, err = kernel.UUIDFromBytes(courierID[:])
		if err != nil {
			return nil, err
		}

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
