// Package auth - выпуск и валидация JWT токенов доступа
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-VehicleRegistry/internal/config"
	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

// TokenTTL время жизни токена доступа (фиксированное)
const TokenTTL = time.Hour

// TokenType тип выпускаемого токена
const TokenType = "Bearer"

// TokenResponse результат выпуска токена
type TokenResponse struct {
	Token      string    `json:"token"`
	TokenType  string    `json:"tokenType"`
	Expiration time.Time `json:"expiration"`
}

// Manager выпускает и валидирует токены с симметричным ключом (HMAC-SHA256)
// Issuer и Audience опциональны: пустые значения отключают соответствующую проверку
type Manager struct {
	key      []byte
	issuer   string
	audience string

	now func() time.Time // подменяется в тестах
}

// NewManager создает менеджер токенов из конфигурации
func NewManager(cfg config.JWTConfig) *Manager {
	return &Manager{
		key:      []byte(cfg.Key),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		now:      time.Now,
	}
}

// Issue выпускает подписанный токен для аутентифицированного администратора
// Срок действия: момент выпуска + TokenTTL
func (m *Manager) Issue(administrator *domain.Administrator) (*TokenResponse, error) {
	now := m.now()
	expiresAt := now.Add(TokenTTL)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
		Email:   administrator.Email,
		Profile: string(administrator.Profile),
		Role:    string(administrator.Profile),
	}

	if m.issuer != "" {
		claims.Issuer = m.issuer
	}
	if m.audience != "" {
		claims.Audience = jwt.ClaimStrings{m.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignToken, err)
	}

	return &TokenResponse{
		Token:      signed,
		TokenType:  TokenType,
		Expiration: expiresAt,
	}, nil
}

// Parse валидирует токен и возвращает его claims
// Проверяются подпись (только HS256), срок действия и, если настроены, issuer и audience
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	if m.audience != "" {
		opts = append(opts, jwt.WithAudience(m.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return m.key, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Role == "" {
		return nil, fmt.Errorf("%w: missing role claim", ErrTokenInvalid)
	}

	return claims, nil
}
