package in

import (
	"context"

	"chargestation/internal/vehicle/domain"
)

// GetVehicleInput scopes the lookup to the caller: the ownership filter
// applies to every role, admins included.
type GetVehicleInput struct {
	VehicleID string
	Username  string
}

type GetVehicleOutput struct {
	Data domain.Vehicle `json:"data"`
}

type GetVehicleUseCase interface {
	Execute(ctx context.Context, input GetVehicleInput) (*GetVehicleOutput, error)
}
