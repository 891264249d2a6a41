package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"chargestation/internal/shared/logger"
	"chargestation/internal/vehicle/application/ports/in"
	"chargestation/internal/vehicle/domain"
)

const maxBodySize = 1 << 20 // 1MB

// HTTPHandler exposes the five vehicle operations.
type HTTPHandler struct {
	listVehiclesUC  in.ListVehiclesUseCase
	getVehicleUC    in.GetVehicleUseCase
	addVehicleUC    in.AddVehicleUseCase
	updateVehicleUC in.UpdateVehicleUseCase
	deleteVehicleUC in.DeleteVehicleUseCase
	log             *logger.Logger
}

func NewHTTPHandler(
	listVehiclesUC in.ListVehiclesUseCase,
	getVehicleUC in.GetVehicleUseCase,
	addVehicleUC in.AddVehicleUseCase,
	updateVehicleUC in.UpdateVehicleUseCase,
	deleteVehicleUC in.DeleteVehicleUseCase,
	log *logger.Logger,
) *HTTPHandler {
	return &HTTPHandler{
		listVehiclesUC:  listVehiclesUC,
		getVehicleUC:    getVehicleUC,
		addVehicleUC:    addVehicleUC,
		updateVehicleUC: updateVehicleUC,
		deleteVehicleUC: deleteVehicleUC,
		log:             log,
	}
}

// RegisterRoutes wires the vehicle routes. Every operation sits behind the
// same auth + role chain; driver and admin have identical authority here.
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux, authn, authz func(http.HandlerFunc) http.HandlerFunc) {
	// liveness probe, no authentication
	mux.HandleFunc("GET /health", h.handleHealth)

	mux.HandleFunc("GET /vehicles/getall", authn(authz(h.handleGetAll)))
	mux.HandleFunc("GET /vehicles/getbyid/{id}", authn(authz(h.handleGetByID)))
	mux.HandleFunc("POST /vehicles/add", authn(authz(h.handleAdd)))
	mux.HandleFunc("PUT /vehicles/update/{id}", authn(authz(h.handleUpdate)))
	mux.HandleFunc("DELETE /vehicles/delete/{id}", authn(authz(h.handleDelete)))
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok","service":"vehicle"}`))
}

// handleGetAll lists the caller's own vehicles: count plus data in store
// order. An empty list is a 200, not an error.
func (h *HTTPHandler) handleGetAll(w http.ResponseWriter, r *http.Request) {
	username, _ := callerIdentity(r)

	output, err := h.listVehiclesUC.Execute(r.Context(), in.ListVehiclesInput{Username: username})
	if err != nil {
		respondEnvelope(w, http.StatusInternalServerError,
			fmt.Sprintf("Error has occurred while getting vehicles: %v", err), true)
		return
	}

	respondEnvelope(w, http.StatusOK, output, false)
}

// handleGetByID fetches one vehicle, always filtered by the caller's
// username. An admin cannot fetch another user's vehicle through this path.
func (h *HTTPHandler) handleGetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	username, _ := callerIdentity(r)

	output, err := h.getVehicleUC.Execute(r.Context(), in.GetVehicleInput{
		VehicleID: id,
		Username:  username,
	})
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			respondEnvelope(w, http.StatusBadRequest, "Vehicle not found", true)
			return
		}
		respondEnvelope(w, http.StatusInternalServerError,
			fmt.Sprintf("Error has occurred while getting the vehicle: %v", err), true)
		return
	}

	respondEnvelope(w, http.StatusOK, output, false)
}

// AddVehicleRequest is the HTTP DTO for POST /vehicles/add. Username names
// the target owner; the caller does not have to be the owner.
type AddVehicleRequest struct {
	Manufacturer        string  `json:"manufacturer"`
	Model               string  `json:"model"`
	Year                int     `json:"year"`
	Color               string  `json:"color"`
	BatteryCapacity     float64 `json:"batteryCapacity"`
	FuelType            string  `json:"fuelType"`
	Mileage             float64 `json:"mileage"`
	RegenerativeBraking bool    `json:"regenerativeBraking"`
	Username            string  `json:"username"`
}

func (h *HTTPHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req AddVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error(logger.Entry{
			Action:  "parse_add_vehicle_request_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		respondEnvelope(w, http.StatusBadRequest, "Invalid request format", true)
		return
	}

	err := h.addVehicleUC.Execute(r.Context(), in.AddVehicleInput{
		Manufacturer:        req.Manufacturer,
		Model:               req.Model,
		Year:                req.Year,
		Color:               req.Color,
		BatteryCapacity:     req.BatteryCapacity,
		FuelType:            req.FuelType,
		Mileage:             req.Mileage,
		RegenerativeBraking: req.RegenerativeBraking,
		Username:            req.Username,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOwnerNotFound):
			respondEnvelope(w, http.StatusBadRequest, "User not found", true)
		case errors.Is(err, domain.ErrOwnerNotDriver):
			respondEnvelope(w, http.StatusBadRequest,
				"Vehicle couldn't be assigned to someone who's not a driver.", true)
		default:
			respondEnvelope(w, http.StatusInternalServerError,
				fmt.Sprintf("Error has occurred while adding the vehicle: %v", err), true)
		}
		return
	}

	// Message only: the created identifier is not returned to the caller.
	respondEnvelope(w, http.StatusCreated, "Vehicle successfully added.", false)
}

// handleUpdate patches any vehicle by identifier. No ownership filter,
// asymmetric with handleGetByID; existing callers depend on it.
func (h *HTTPHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var patch domain.VehiclePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.log.Error(logger.Entry{
			Action:  "parse_update_vehicle_request_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		respondEnvelope(w, http.StatusBadRequest, "Invalid request format", true)
		return
	}

	err := h.updateVehicleUC.Execute(r.Context(), in.UpdateVehicleInput{
		VehicleID: id,
		Patch:     patch,
	})
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			respondEnvelope(w, http.StatusBadRequest, "Vehicle not found", true)
			return
		}
		respondEnvelope(w, http.StatusInternalServerError,
			fmt.Sprintf("Error has occurred while updating the vehicle: %v", err), true)
		return
	}

	respondEnvelope(w, http.StatusOK, "Vehicle successfully updated.", false)
}

// handleDelete removes any vehicle by identifier, same asymmetry as update.
func (h *HTTPHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.deleteVehicleUC.Execute(r.Context(), in.DeleteVehicleInput{VehicleID: id})
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			respondEnvelope(w, http.StatusBadRequest, "Vehicle not found", true)
			return
		}
		respondEnvelope(w, http.StatusInternalServerError,
			fmt.Sprintf("Error has occurred while deleting the vehicle: %v", err), true)
		return
	}

	respondEnvelope(w, http.StatusOK, "Vehicle successfully deleted.", false)
}
