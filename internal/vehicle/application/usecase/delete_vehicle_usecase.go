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

// DeleteVehicleService implements DeleteVehicleUseCase.
type DeleteVehicleService struct {
	vehicleRepo out.VehicleRepository
	log         *logger.Logger
}

func NewDeleteVehicleService(vehicleRepo out.VehicleRepository, log *logger.Logger) *DeleteVehicleService {
	return &DeleteVehicleService{
		vehicleRepo: vehicleRepo,
		log:         log,
	}
}

// Execute removes a vehicle by identifier. No ownership filter applies;
// deleting an already-deleted identifier reports not found again.
func (s *DeleteVehicleService) Execute(ctx context.Context, input in.DeleteVehicleInput) error {
	err := s.vehicleRepo.DeleteByID(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			return domain.ErrVehicleNotFound
		}
		s.log.Error(logger.Entry{
			Action:    "delete_vehicle_failed",
			Message:   err.Error(),
			VehicleID: input.VehicleID,
			Error:     &logger.ErrObj{Msg: err.Error()},
		})
		return fmt.Errorf("delete vehicle: %w", err)
	}

	s.log.Info(logger.Entry{
		Action:    "vehicle_deleted",
		Message:   "vehicle deleted",
		VehicleID: input.VehicleID,
	})

	return nil
}
