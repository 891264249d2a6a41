package usecase

import (
	"context"

	"chargestation/internal/shared/user"
	"chargestation/internal/vehicle/domain"
)

// fakeVehicleRepo is an in-memory VehicleRepository with call counters and
// an optional forced error.
type fakeVehicleRepo struct {
	vehicles map[string]domain.Vehicle
	failWith error
	calls    int
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: map[string]domain.Vehicle{}}
}

func (f *fakeVehicleRepo) FindByUsername(ctx context.Context, username string) ([]domain.Vehicle, error) {
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	result := []domain.Vehicle{}
	for _, v := range f.vehicles {
		if v.Username == username {
			result = append(result, v)
		}
	}
	return result, nil
}

func (f *fakeVehicleRepo) FindByIDAndUsername(ctx context.Context, id, username string) (*domain.Vehicle, error) {
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	v, ok := f.vehicles[id]
	if !ok || v.Username != username {
		return nil, domain.ErrVehicleNotFound
	}
	return &v, nil
}

func (f *fakeVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	f.calls++
	if f.failWith != nil {
		return f.failWith
	}
	f.vehicles[v.ID] = *v
	return nil
}

func (f *fakeVehicleRepo) UpdateByID(ctx context.Context, id string, patch domain.VehiclePatch) error {
	f.calls++
	if f.failWith != nil {
		return f.failWith
	}
	v, ok := f.vehicles[id]
	if !ok {
		return domain.ErrVehicleNotFound
	}
	if patch.Manufacturer != nil {
		v.Manufacturer = *patch.Manufacturer
	}
	if patch.Model != nil {
		v.Model = *patch.Model
	}
	if patch.Year != nil {
		v.Year = *patch.Year
	}
	if patch.Color != nil {
		v.Color = *patch.Color
	}
	if patch.BatteryCapacity != nil {
		v.BatteryCapacity = *patch.BatteryCapacity
	}
	if patch.FuelType != nil {
		v.FuelType = *patch.FuelType
	}
	if patch.Mileage != nil {
		v.Mileage = *patch.Mileage
	}
	if patch.RegenerativeBraking != nil {
		v.RegenerativeBraking = *patch.RegenerativeBraking
	}
	if patch.Username != nil {
		v.Username = *patch.Username
	}
	f.vehicles[id] = v
	return nil
}

func (f *fakeVehicleRepo) DeleteByID(ctx context.Context, id string) error {
	f.calls++
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.vehicles[id]; !ok {
		return domain.ErrVehicleNotFound
	}
	delete(f.vehicles, id)
	return nil
}

// fakeUserRepo serves the read-only owner lookup.
type fakeUserRepo struct {
	users map[string]user.User
	calls int
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[string]user.User{}}
	for _, u := range users {
		f.users[u.Username] = u
	}
	return f
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	f.calls++
	u, ok := f.users[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}
