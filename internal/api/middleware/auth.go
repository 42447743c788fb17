package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-VehicleRegistry/internal/api/handlers"
	"github.com/m04kA/SMC-VehicleRegistry/internal/auth"
	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

type contextKey string

const claimsKey contextKey = "auth.claims"

const (
	msgMissingToken = "отсутствует bearer токен"
	msgInvalidToken = "невалидный или истекший токен"
	msgForbidden    = "недостаточно прав"
)

// TokenParser интерфейс валидации токенов
type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth middleware проверки bearer токена
// Невалидный, истекший или отсутствующий токен отклоняется до вызова сервисов;
// claims успешно проверенного токена кладутся в контекст запроса
func Auth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := extractBearerToken(r)
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := parser.Parse(token)
			if err != nil {
				logger.Warn("%s %s - Token rejected: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireProfile middleware проверки роли из токена
// Применяется после Auth; при несовпадении роли возвращает 403
func RequireProfile(profile domain.Profile, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				logger.Warn("%s %s - Missing claims in context", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if !claims.HasProfile(profile) {
				logger.Warn("%s %s - Profile %q lacks required profile %q",
					r.Method, r.URL.Path, claims.Role, profile)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetClaims возвращает claims токена из контекста запроса
func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// extractBearerToken извлекает токен из заголовка Authorization: Bearer <token>
func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
