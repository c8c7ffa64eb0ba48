// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The table is an audit trail of the in-memory ledger, indexed for querying
// by status and courier assignment.
//
// Menu contents are not persisted; the stored final price already reflects
// discounts and is all the read side needs.
type OrderDTO struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID     `gorm:"type:uuid;not null;index"`
	CourierID    *uuid.UUID    `gorm:"type:uuid;index"`
	Delivery     CoordinateDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	FinalPrice   *float64      `gorm:"type:double precision"`
	Status       string        `gorm:"type:varchar(32);not null;index"`
	CreatedAt    time.Time     `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CoordinateDTO represents the embedded delivery coordinates within the order table.
type CoordinateDTO struct {
	X float64 `gorm:"type:double precision"`
	Y float64 `gorm:"type:double precision"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional courier assignment and pricing.
func fromDomain(o *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := o.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var finalPrice *float64
	if price, priced := o.FinalPrice(); priced {
		finalPrice = &price
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		CustomerID:   o.CustomerID().Bytes(),
		RestaurantID: o.RestaurantID().Bytes(),
		CourierID:    courierID,
		Delivery: CoordinateDTO{
			X: o.DeliveryLocation().X(),
			Y: o.DeliveryLocation().Y(),
		},
		FinalPrice: finalPrice,
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the aggregate including status, pricing and courier assignment
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	delivery, err := kernel.NewCoordinate(dto.Delivery.X, dto.Delivery.Y)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, restaurantID, courierID, delivery, dto.CreatedAt, dto.FinalPrice, status)
}
