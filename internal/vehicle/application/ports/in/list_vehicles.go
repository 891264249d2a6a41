package in

import (
	"context"

	"chargestation/internal/vehicle/domain"
)

// ListVehiclesInput carries the caller identity; the listing is always
// scoped to the caller's own vehicles.
type ListVehiclesInput struct {
	Username string
}

type ListVehiclesOutput struct {
	Count int              `json:"count"`
	Data  []domain.Vehicle `json:"data"`
}

type ListVehiclesUseCase interface {
	Execute(ctx context.Context, input ListVehiclesInput) (*ListVehiclesOutput, error)
}
