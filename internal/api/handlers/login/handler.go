package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VehicleRegistry/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleRegistry/internal/usecase/authenticate"
	"github.com/m04kA/SMC-VehicleRegistry/internal/validation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный email или пароль"
)

type Handler struct {
	useCase AuthenticateUseCase
	logger  Logger
}

func NewHandler(useCase AuthenticateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Валидация формата до обращения к usecase
	if errs := validation.ValidateLogin(req.Email, req.Password); errs.HasErrors() {
		h.logger.Warn("POST /login - Validation failed: %v", errs)
		handlers.RespondValidationErrors(w, errs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, authenticate.ErrInvalidCredentials),
			errors.Is(err, authenticate.ErrInvalidInput):
			h.logger.Warn("POST /login - Invalid credentials: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /login - Failed to authenticate: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /login - Token issued: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
