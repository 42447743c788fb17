package register

import (
	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

// Request запрос на регистрацию администратора
type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Profile  string `json:"profile"`
}

// Response данные созданного администратора (без пароля и хеша)
type Response struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
}

// FromDomainAdministrator конвертирует domain сущность в ответ usecase
func FromDomainAdministrator(a *domain.Administrator) *Response {
	return &Response{
		ID:      a.ID,
		Email:   a.Email,
		Profile: string(a.Profile),
	}
}
