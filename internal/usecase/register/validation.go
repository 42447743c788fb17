package register

import (
	"fmt"

	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Полная валидация формата (email, политика пароля) выполняется на HTTP слое,
// здесь только инварианты, без которых учетную запись создавать нельзя
func validateRequest(req *Request) error {
	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if !domain.Profile(req.Profile).IsValid() {
		return fmt.Errorf("%w: unknown profile %q", ErrInvalidInput, req.Profile)
	}
	return nil
}
