// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"foodmarket/internal/core/domain/model/courier"
	"foodmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// The fleet is reloaded from this table at process start, so it carries the
// full courier state: duty flag, position and lifetime delivery counter.
type CourierDTO struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name           string        `gorm:"type:varchar(255);not null"`
	OnDuty         bool          `gorm:"not null"`
	DeliveredCount int           `gorm:"type:int;not null"`
	Location       CoordinateDTO `gorm:"embedded;embeddedPrefix:location_"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// CoordinateDTO represents the embedded location coordinates within the courier table.
// Stores the courier's last reported position.
type CoordinateDTO struct {
	X float64 `gorm:"type:double precision"`
	Y float64 `gorm:"type:double precision"`
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:             c.ID().Bytes(),
		Name:           c.Name(),
		OnDuty:         c.IsOnDuty(),
		DeliveredCount: c.DeliveredCount(),
		Location: CoordinateDTO{
			X: c.Location().X(),
			Y: c.Location().Y(),
		},
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the aggregate with its persisted duty state and delivery
// counter using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewCoordinate(dto.Location.X, dto.Location.Y)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, loc, dto.OnDuty, dto.DeliveredCount)
}
