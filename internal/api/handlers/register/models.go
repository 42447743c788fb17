package register

import (
	registerUC "github.com/m04kA/SMC-VehicleRegistry/internal/usecase/register"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Profile  string `json:"profile"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterRequest) ToUseCaseRequest() *registerUC.Request {
	return &registerUC.Request{
		Email:    r.Email,
		Password: r.Password,
		Profile:  r.Profile,
	}
}

// AdministratorResponse HTTP response model
type AdministratorResponse struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerUC.Response) *AdministratorResponse {
	return &AdministratorResponse{
		ID:      resp.ID,
		Email:   resp.Email,
		Profile: resp.Profile,
	}
}
