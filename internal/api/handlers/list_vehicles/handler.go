package list_vehicles

import (
	"net/http"

	"github.com/m04kA/SMC-VehicleRegistry/internal/api/handlers"
)

const msgInvalidParams = "некорректные параметры запроса"

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

// Handle GET /vehicles
// Query params: page, pageSize, name, brand, year (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	serviceReq, err := ToServiceRequest(
		q.Get("page"),
		q.Get("pageSize"),
		q.Get("name"),
		q.Get("brand"),
		q.Get("year"),
	)
	if err != nil {
		h.logger.Warn("GET /vehicles - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /vehicles - Failed to list vehicles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vehicles - Vehicles retrieved: page=%d, count=%d, total=%d",
		result.PageNumber, len(result.Items), result.TotalItems)
	handlers.RespondJSON(w, http.StatusOK, result)
}
