// Package ports defines the persistence interfaces of the marketplace.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodmarket/internal/core/domain/model/courier"
	"foodmarket/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for the courier roster.
// The roster is persisted with its duty state and delivered counter so the
// fleet survives a restart.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate:
	// duty state, position and delivered counter.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves the whole roster. Used at process start to reload
	// the fleet into the ledger.
	GetAll(ctx context.Context) ([]*courier.Courier, error)
}
