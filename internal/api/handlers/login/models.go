package login

import (
	"time"

	"github.com/m04kA/SMC-VehicleRegistry/internal/usecase/authenticate"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *LoginRequest) ToUseCaseRequest() *authenticate.Request {
	return &authenticate.Request{
		Email:    r.Email,
		Password: r.Password,
	}
}

// TokenResponse HTTP response model
type TokenResponse struct {
	Token      string    `json:"token"`
	TokenType  string    `json:"tokenType"`
	Expiration time.Time `json:"expiration"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *authenticate.Response) *TokenResponse {
	return &TokenResponse{
		Token:      resp.Token,
		TokenType:  resp.TokenType,
		Expiration: resp.Expiration,
	}
}
