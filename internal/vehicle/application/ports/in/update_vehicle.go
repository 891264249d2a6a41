package in

import (
	"context"

	"chargestation/internal/vehicle/domain"
)

// UpdateVehicleInput patches a vehicle by identifier. Unlike get-by-id, no
// ownership filter applies: any authorized caller may update any vehicle.
type UpdateVehicleInput struct {
	VehicleID string
	Patch     domain.VehiclePatch
}

type UpdateVehicleUseCase interface {
	Execute(ctx context.Context, input UpdateVehicleInput) error
}
