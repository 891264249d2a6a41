package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chargestation/internal/shared/logger"
	"chargestation/internal/shared/user"
	"chargestation/internal/vehicle/application/ports/in"
	"chargestation/internal/vehicle/application/ports/out"
	"chargestation/internal/vehicle/domain"

	"github.com/google/uuid"
)

// AddVehicleService implements AddVehicleUseCase.
type AddVehicleService struct {
	vehicleRepo out.VehicleRepository
	userRepo    user.Repository
	log         *logger.Logger
}

func NewAddVehicleService(vehicleRepo out.VehicleRepository, userRepo user.Repository, log *logger.Logger) *AddVehicleService {
	return &AddVehicleService{
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		log:         log,
	}
}

// Execute validates the target owner, then persists the vehicle. The owner
// must exist and hold the driver role; this is checked at creation only.
func (s *AddVehicleService) Execute(ctx context.Context, input in.AddVehicleInput) error {
	owner, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return domain.ErrOwnerNotFound
		}
		s.log.Error(logger.Entry{
			Action:  "resolve_owner_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
			Additional: map[string]interface{}{
				"username": input.Username,
			},
		})
		return fmt.Errorf("resolve owner: %w", err)
	}

	if !owner.IsDriver() {
		return domain.ErrOwnerNotDriver
	}

	now := time.Now().UTC()
	vehicle := &domain.Vehicle{
		ID:                  uuid.New().String(),
		Manufacturer:        input.Manufacturer,
		Model:               input.Model,
		Year:                input.Year,
		Color:               input.Color,
		BatteryCapacity:     input.BatteryCapacity,
		FuelType:            input.FuelType,
		Mileage:             input.Mileage,
		RegenerativeBraking: input.RegenerativeBraking,
		Username:            input.Username,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		s.log.Error(logger.Entry{
			Action:    "add_vehicle_failed",
			Message:   err.Error(),
			VehicleID: vehicle.ID,
			Error:     &logger.ErrObj{Msg: err.Error()},
		})
		return fmt.Errorf("add vehicle: %w", err)
	}

	s.log.Info(logger.Entry{
		Action:    "vehicle_added",
		Message:   fmt.Sprintf("vehicle assigned to %s", vehicle.Username),
		VehicleID: vehicle.ID,
		Additional: map[string]interface{}{
			"username":     vehicle.Username,
			"manufacturer": vehicle.Manufacturer,
			"model":        vehicle.Model,
		},
	})

	return nil
}
