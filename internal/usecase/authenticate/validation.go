package authenticate

import "fmt"

// validateRequest валидирует входные данные запроса
// Полная валидация формата выполняется на HTTP слое, здесь только инварианты
func validateRequest(req *Request) error {
	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}
