package usecase

import (
	"context"
	"errors"
	"testing"

	"chargestation/internal/vehicle/application/ports/in"
	"chargestation/internal/vehicle/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVehiclesScopedToCaller(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	vehicleRepo.vehicles["v1"] = domain.Vehicle{ID: "v1", Username: "alice", Manufacturer: "Tesla"}
	vehicleRepo.vehicles["v2"] = domain.Vehicle{ID: "v2", Username: "bob", Manufacturer: "Nissan"}
	vehicleRepo.vehicles["v3"] = domain.Vehicle{ID: "v3", Username: "alice", Manufacturer: "BMW"}

	svc := NewListVehiclesService(vehicleRepo, testLogger())

	output, err := svc.Execute(context.Background(), in.ListVehiclesInput{Username: "alice"})
	require.NoError(t, err)

	assert.Equal(t, 2, output.Count)
	assert.Len(t, output.Data, 2)
	for _, v := range output.Data {
		assert.Equal(t, "alice", v.Username)
	}
}

func TestListVehiclesEmptyIsSuccess(t *testing.T) {
	svc := NewListVehiclesService(newFakeVehicleRepo(), testLogger())

	output, err := svc.Execute(context.Background(), in.ListVehiclesInput{Username: "alice"})
	require.NoError(t, err)

	assert.Equal(t, 0, output.Count)
	assert.NotNil(t, output.Data, "data serializes as [] rather than null")
	assert.Empty(t, output.Data)
}

func TestListVehiclesStoreFailure(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	vehicleRepo.failWith = errors.New("timeout")

	svc := NewListVehiclesService(vehicleRepo, testLogger())

	_, err := svc.Execute(context.Background(), in.ListVehiclesInput{Username: "alice"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}
