package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VehicleRegistry/internal/auth"
	"github.com/m04kA/SMC-VehicleRegistry/internal/config"
	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

const testKey = "0123456789abcdef0123456789abcdef"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func issueToken(t *testing.T, m *auth.Manager, profile domain.Profile) string {
	t.Helper()

	resp, err := m.Issue(&domain.Administrator{
		ID:      1,
		Email:   "admin@test.com",
		Profile: profile,
	})
	require.NoError(t, err)
	return resp.Token
}

func TestAuth_MissingToken(t *testing.T) {
	m := auth.NewManager(config.JWTConfig{Key: testKey})
	handler := Auth(m, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/vehicles", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	m := auth.NewManager(config.JWTConfig{Key: testKey})
	handler := Auth(m, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/vehicles", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_WrongScheme(t *testing.T) {
	m := auth.NewManager(config.JWTConfig{Key: testKey})
	handler := Auth(m, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/vehicles", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidToken_ClaimsInContext(t *testing.T) {
	m := auth.NewManager(config.JWTConfig{Key: testKey})

	var gotClaims *auth.Claims
	handler := Auth(m, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		require.True(t, ok)
		gotClaims = claims
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/vehicles", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, m, domain.ProfileAdmin))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotClaims)
	assert.Equal(t, "admin@test.com", gotClaims.Email)
	assert.Equal(t, "admin", gotClaims.Role)
}

func TestRequireProfile(t *testing.T) {
	m := auth.NewManager(config.JWTConfig{Key: testKey})

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Auth(m, nopLogger{})(RequireProfile(domain.ProfileAdmin, nopLogger{})(next))

	// Профиль admin проходит
	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, m, domain.ProfileAdmin))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Профиль editor получает 403: токен валиден, прав недостаточно
	req = httptest.NewRequest(http.MethodPost, "/register", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, m, domain.ProfileEditor))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
