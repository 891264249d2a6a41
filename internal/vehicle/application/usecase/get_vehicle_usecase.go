package usecase

import (
	"context"
	"errors"
	"fmt"

	"chargestation/internal/shared/logger"
	"chargestation/internal/vehicle/application/ports/in"
	"chargestation/internal/vehicle/application/ports/out"
	"chargestation/internal/vehicle/domain"
)

// GetVehicleService implements GetVehicleUseCase.
type GetVehicleService struct {
	vehicleRepo out.VehicleRepository
	log         *logger.Logger
}

func NewGetVehicleService(vehicleRepo out.VehicleRepository, log *logger.Logger) *GetVehicleService {
	return &GetVehicleService{
		vehicleRepo: vehicleRepo,
		log:         log,
	}
}

// Execute fetches one vehicle by identifier, filtered by the caller's
// username. A vehicle owned by someone else is indistinguishable from a
// missing one.
func (s *GetVehicleService) Execute(ctx context.Context, input in.GetVehicleInput) (*in.GetVehicleOutput, error) {
	vehicle, err := s.vehicleRepo.FindByIDAndUsername(ctx, input.VehicleID, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			return nil, domain.ErrVehicleNotFound
		}
		s.log.Error(logger.Entry{
			Action:    "get_vehicle_failed",
			Message:   err.Error(),
			VehicleID: input.VehicleID,
			Error:     &logger.ErrObj{Msg: err.Error()},
		})
		return nil, fmt.Errorf("get vehicle: %w", err)
	}

	return &in.GetVehicleOutput{Data: *vehicle}, nil
}
