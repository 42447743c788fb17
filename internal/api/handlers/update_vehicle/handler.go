package update_vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VehicleRegistry/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleRegistry/internal/service/vehicles"
	"github.com/m04kA/SMC-VehicleRegistry/internal/validation"
)

const (
	msgInvalidVehicleID   = "некорректный ID автомобиля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgIDMismatch         = "Id mismatch"
	msgVehicleNotFound    = "Vehicle not found"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /vehicles/{id}
// ID в пути обязан совпадать с ID в теле; несовпадение отклоняется
// до обращения к сервису и хранилищу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	var req UpdateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /vehicles/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if id != req.ID {
		h.logger.Warn("PUT /vehicles/{id} - ID mismatch: path=%d, body=%d", id, req.ID)
		handlers.RespondBadRequest(w, msgIDMismatch)
		return
	}

	if errs := validation.ValidateVehicle(req.Name, req.Brand, req.Year); errs.HasErrors() {
		h.logger.Warn("PUT /vehicles/{id} - Validation failed: id=%d, %v", id, errs)
		handlers.RespondValidationErrors(w, errs)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("PUT /vehicles/{id} - Vehicle not found: id=%d", id)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("PUT /vehicles/{id} - Invalid input: id=%d", id)
			handlers.RespondBadRequest(w, msgInvalidVehicleID)

		default:
			h.logger.Error("PUT /vehicles/{id} - Failed to update vehicle: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /vehicles/{id} - Vehicle updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
