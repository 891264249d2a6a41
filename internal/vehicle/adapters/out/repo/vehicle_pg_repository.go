package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chargestation/internal/vehicle/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const vehicleColumns = `id, manufacturer, model, year, color, battery_capacity, fuel_type, mileage, regenerative_braking, username, created_at, updated_at`

// VehiclePgRepository is the Postgres implementation of VehicleRepository.
type VehiclePgRepository struct {
	pool *pgxpool.Pool
}

func NewVehiclePgRepository(pool *pgxpool.Pool) *VehiclePgRepository {
	return &VehiclePgRepository{pool: pool}
}

// FindByUsername returns the owner's vehicles in store order.
func (r *VehiclePgRepository) FindByUsername(ctx context.Context, username string) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE username = $1`

	rows, err := r.pool.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("query vehicles by username: %w", err)
	}
	defer rows.Close()

	vehicles := []domain.Vehicle{}
	for rows.Next() {
		var v domain.Vehicle
		if err := scanVehicle(rows, &v); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vehicles: %w", err)
	}

	return vehicles, nil
}

// FindByIDAndUsername filters by both identifier and owner.
func (r *VehiclePgRepository) FindByIDAndUsername(ctx context.Context, id, username string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 AND username = $2`

	var v domain.Vehicle
	err := scanVehicle(r.pool.QueryRow(ctx, query, id, username), &v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("query vehicle by id: %w", err)
	}

	return &v, nil
}

func (r *VehiclePgRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		v.ID,
		v.Manufacturer,
		v.Model,
		v.Year,
		v.Color,
		v.BatteryCapacity,
		v.FuelType,
		v.Mileage,
		v.RegenerativeBraking,
		v.Username,
		v.CreatedAt,
		v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}

	return nil
}

// UpdateByID applies the non-nil patch fields. Intentionally no ownership
// filter: the update path mutates any vehicle the identifier resolves to.
func (r *VehiclePgRepository) UpdateByID(ctx context.Context, id string, patch domain.VehiclePatch) error {
	sets := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Manufacturer != nil {
		add("manufacturer", *patch.Manufacturer)
	}
	if patch.Model != nil {
		add("model", *patch.Model)
	}
	if patch.Year != nil {
		add("year", *patch.Year)
	}
	if patch.Color != nil {
		add("color", *patch.Color)
	}
	if patch.BatteryCapacity != nil {
		add("battery_capacity", *patch.BatteryCapacity)
	}
	if patch.FuelType != nil {
		add("fuel_type", *patch.FuelType)
	}
	if patch.Mileage != nil {
		add("mileage", *patch.Mileage)
	}
	if patch.RegenerativeBraking != nil {
		add("regenerative_braking", *patch.RegenerativeBraking)
	}
	if patch.Username != nil {
		add("username", *patch.Username)
	}

	// An empty patch still has to report whether the vehicle exists.
	if len(sets) == 0 {
		query := `SELECT EXISTS(SELECT 1 FROM vehicles WHERE id = $1)`
		var exists bool
		if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
			return fmt.Errorf("check vehicle exists: %w", err)
		}
		if !exists {
			return domain.ErrVehicleNotFound
		}
		return nil
	}

	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE vehicles SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVehicleNotFound
	}

	return nil
}

// DeleteByID removes by identifier only, no ownership filter.
func (r *VehiclePgRepository) DeleteByID(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVehicleNotFound
	}

	return nil
}

func scanVehicle(row pgx.Row, v *domain.Vehicle) error {
	return row.Scan(
		&v.ID,
		&v.Manufacturer,
		&v.Model,
		&v.Year,
		&v.Color,
		&v.BatteryCapacity,
		&v.FuelType,
		&v.Mileage,
		&v.RegenerativeBraking,
		&v.Username,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
}
