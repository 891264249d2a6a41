package usecase

import (
	"context"
	"fmt"

	"chargestation/internal/shared/logger"
	"chargestation/internal/vehicle/application/ports/in"
	"chargestation/internal/vehicle/application/ports/out"
)

// ListVehiclesService implements ListVehiclesUseCase.
type ListVehiclesService struct {
	vehicleRepo out.VehicleRepository
	log         *logger.Logger
}

func NewListVehiclesService(vehicleRepo out.VehicleRepository, log *logger.Logger) *ListVehiclesService {
	return &ListVehiclesService{
		vehicleRepo: vehicleRepo,
		log:         log,
	}
}

// Execute lists the caller's own vehicles. Zero results is success.
func (s *ListVehiclesService) Execute(ctx context.Context, input in.ListVehiclesInput) (*in.ListVehiclesOutput, error) {
	vehicles, err := s.vehicleRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		s.log.Error(logger.Entry{
			Action:  "list_vehicles_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
			Additional: map[string]interface{}{
				"username": input.Username,
			},
		})
		return nil, fmt.Errorf("list vehicles: %w", err)
	}

	return &in.ListVehiclesOutput{
		Count: len(vehicles),
		Data:  vehicles,
	}, nil
}
