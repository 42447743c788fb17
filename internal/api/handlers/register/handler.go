package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VehicleRegistry/internal/api/handlers"
	registerUC "github.com/m04kA/SMC-VehicleRegistry/internal/usecase/register"
	"github.com/m04kA/SMC-VehicleRegistry/internal/validation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные регистрации"
)

type Handler struct {
	useCase RegisterUseCase
	logger  Logger
}

func NewHandler(useCase RegisterUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /register
// Доступно только администраторам с профилем admin (проверяется в middleware)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Валидация формата до обращения к usecase
	if errs := validation.ValidateRegistration(req.Email, req.Password, req.Profile); errs.HasErrors() {
		h.logger.Warn("POST /register - Validation failed: email=%s, %v", req.Email, errs)
		handlers.RespondValidationErrors(w, errs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, registerUC.ErrInvalidInput):
			h.logger.Warn("POST /register - Invalid input: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /register - Failed to register: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /register - Administrator created: id=%d, email=%s", result.ID, result.Email)
	w.Header().Set("Location", "/login")
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
