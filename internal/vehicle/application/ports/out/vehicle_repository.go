package out

import (
	"context"

	"chargestation/internal/vehicle/domain"
)

// VehicleRepository is the persistence port for vehicles.
type VehicleRepository interface {
	// FindByUsername returns every vehicle owned by username, in store order.
	// An empty result is success, not an error.
	FindByUsername(ctx context.Context, username string) ([]domain.Vehicle, error)

	// FindByIDAndUsername returns domain.ErrVehicleNotFound unless a vehicle
	// matches both the identifier and the owner username.
	FindByIDAndUsername(ctx context.Context, id, username string) (*domain.Vehicle, error)

	// Create persists a new vehicle with all fields set.
	Create(ctx context.Context, v *domain.Vehicle) error

	// UpdateByID applies the non-nil patch fields to the vehicle with the
	// given identifier. Returns domain.ErrVehicleNotFound when the identifier
	// does not resolve. No ownership filter.
	UpdateByID(ctx context.Context, id string, patch domain.VehiclePatch) error

	// DeleteByID removes the vehicle with the given identifier. Returns
	// domain.ErrVehicleNotFound when the identifier does not resolve.
	// No ownership filter.
	DeleteByID(ctx context.Context, id string) error
}
