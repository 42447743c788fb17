package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

// Claims полезная нагрузка токена
// Role дублирует Profile: это стандартное имя клейма для проверки прав,
// Profile сохраняется для обратной совместимости с клиентами
type Claims struct {
	jwt.RegisteredClaims
	Email   string `json:"Email"`
	Profile string `json:"Profile"`
	Role    string `json:"role"`
}

// HasProfile возвращает true, если роль в токене совпадает с требуемым профилем
func (c *Claims) HasProfile(profile domain.Profile) bool {
	return c.Role == string(profile)
}
