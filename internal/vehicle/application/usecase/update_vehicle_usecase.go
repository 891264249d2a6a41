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

// UpdateVehicleService implements UpdateVehicleUseCase.
type UpdateVehicleService struct {
	vehicleRepo out.VehicleRepository
	log         *logger.Logger
}

func NewUpdateVehicleService(vehicleRepo out.VehicleRepository, log *logger.Logger) *UpdateVehicleService {
	return &UpdateVehicleService{
		vehicleRepo: vehicleRepo,
		log:         log,
	}
}

// Execute applies a partial patch by identifier. The owner reference is not
// re-validated here, and no ownership filter applies.
func (s *UpdateVehicleService) Execute(ctx context.Context, input in.UpdateVehicleInput) error {
	err := s.vehicleRepo.UpdateByID(ctx, input.VehicleID, input.Patch)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			return domain.ErrVehicleNotFound
		}
		s.log.Error(logger.Entry{
			Action:    "update_vehicle_failed",
			Message:   err.Error(),
			VehicleID: input.VehicleID,
			Error:     &logger.ErrObj{Msg: err.Error()},
		})
		return fmt.Errorf("update vehicle: %w", err)
	}

	s.log.Info(logger.Entry{
		Action:    "vehicle_updated",
		Message:   "vehicle updated",
		VehicleID: input.VehicleID,
	})

	return nil
}
