package create_vehicle

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-VehicleRegistry/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleRegistry/internal/validation"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := validation.ValidateVehicle(req.Name, req.Brand, req.Year); errs.HasErrors() {
		h.logger.Warn("POST /vehicles - Validation failed: %v", errs)
		handlers.RespondValidationErrors(w, errs)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.logger.Error("POST /vehicles - Failed to create vehicle: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created: id=%d", result.ID)
	w.Header().Set("Location", fmt.Sprintf("/vehicles/%d", result.ID))
	handlers.RespondJSON(w, http.StatusCreated, result)
}
