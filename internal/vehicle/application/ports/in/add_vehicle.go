package in

import "context"

// AddVehicleInput is the full vehicle field set plus the target owner.
// Any authorized caller may assign a vehicle to any username; the owner
// must exist and have the driver role.
type AddVehicleInput struct {
	Manufacturer        string
	Model               string
	Year                int
	Color               string
	BatteryCapacity     float64
	FuelType            string
	Mileage             float64
	RegenerativeBraking bool
	Username            string
}

// AddVehicleUseCase returns no created entity or identifier; callers get a
// confirmation message only.
type AddVehicleUseCase interface {
	Execute(ctx context.Context, input AddVehicleInput) error
}
