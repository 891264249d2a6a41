package in

import "context"

// DeleteVehicleInput removes a vehicle by identifier. Same as update, no
// ownership filter applies.
type DeleteVehicleInput struct {
	VehicleID string
}

type DeleteVehicleUseCase interface {
	Execute(ctx context.Context, input DeleteVehicleInput) error
}
