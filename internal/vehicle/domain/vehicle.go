package domain

import "time"

// Vehicle is an electric vehicle registered to a driver account.
// Username references users.username; the link is validated when the
// vehicle is added and never re-checked on update.
type Vehicle struct {
	ID                  string    `json:"id" db:"id"`
	Manufacturer        string    `json:"manufacturer" db:"manufacturer"`
	Model               string    `json:"model" db:"model"`
	Year                int       `json:"year" db:"year"`
	Color               string    `json:"color" db:"color"`
	BatteryCapacity     float64   `json:"batteryCapacity" db:"battery_capacity"`
	FuelType            string    `json:"fuelType" db:"fuel_type"`
	Mileage             float64   `json:"mileage" db:"mileage"`
	RegenerativeBraking bool      `json:"regenerativeBraking" db:"regenerative_braking"`
	Username            string    `json:"username" db:"username"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}

// VehiclePatch is a partial field set for updates. Nil means unchanged.
type VehiclePatch struct {
	Manufacturer        *string  `json:"manufacturer,omitempty"`
	Model               *string  `json:"model,omitempty"`
	Year                *int     `json:"year,omitempty"`
	Color               *string  `json:"color,omitempty"`
	BatteryCapacity     *float64 `json:"batteryCapacity,omitempty"`
	FuelType            *string  `json:"fuelType,omitempty"`
	Mileage             *float64 `json:"mileage,omitempty"`
	RegenerativeBraking *bool    `json:"regenerativeBraking,omitempty"`
	Username            *string  `json:"username,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p VehiclePatch) IsEmpty() bool {
	return p.Manufacturer == nil && p.Model == nil && p.Year == nil &&
		p.Color == nil && p.BatteryCapacity == nil && p.FuelType == nil &&
		p.Mileage == nil && p.RegenerativeBraking == nil && p.Username == nil
}
