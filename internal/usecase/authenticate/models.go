package authenticate

import (
	"time"

	"github.com/m04kA/SMC-VehicleRegistry/internal/auth"
)

// Request запрос на аутентификацию
type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response результат аутентификации с выпущенным токеном
type Response struct {
	Token      string    `json:"token"`
	TokenType  string    `json:"tokenType"`
	Expiration time.Time `json:"expiration"`
}

// FromTokenResponse конвертирует результат выпуска токена в ответ usecase
func FromTokenResponse(t *auth.TokenResponse) *Response {
	return &Response{
		Token:      t.Token,
		TokenType:  t.TokenType,
		Expiration: t.Expiration,
	}
}
