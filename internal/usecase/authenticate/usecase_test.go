package authenticate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-VehicleRegistry/internal/auth"
	"github.com/m04kA/SMC-VehicleRegistry/internal/config"
	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
	adminRepo "github.com/m04kA/SMC-VehicleRegistry/internal/infra/storage/administrator"
)

const testKey = "0123456789abcdef0123456789abcdef"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAdminRepo struct {
	admins map[string]*domain.Administrator
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Administrator, error) {
	admin, ok := r.admins[email]
	if !ok {
		return nil, adminRepo.ErrAdministratorNotFound
	}
	return admin, nil
}

func newFakeAdminRepo(t *testing.T, email, password string) *fakeAdminRepo {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &fakeAdminRepo{admins: map[string]*domain.Administrator{
		email: {
			ID:           1,
			Email:        email,
			PasswordHash: string(hash),
			Profile:      domain.ProfileAdmin,
		},
	}}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := newFakeAdminRepo(t, "admin@test.com", "password123")
	manager := auth.NewManager(config.JWTConfig{Key: testKey})
	uc := NewUseCase(repo, manager, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Email:    "admin@test.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NotEmpty(t, resp.Token)

	// Выпущенный токен проходит валидацию тем же ключом
	claims, err := manager.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@test.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestUseCase_Execute_WrongPassword(t *testing.T) {
	repo := newFakeAdminRepo(t, "admin@test.com", "password123")
	uc := NewUseCase(repo, auth.NewManager(config.JWTConfig{Key: testKey}), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Email:    "admin@test.com",
		Password: "wrong-password",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUseCase_Execute_UnknownEmail(t *testing.T) {
	repo := newFakeAdminRepo(t, "admin@test.com", "password123")
	uc := NewUseCase(repo, auth.NewManager(config.JWTConfig{Key: testKey}), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Email:    "nobody@test.com",
		Password: "password123",
	})

	// Неизвестный email неотличим от неверного пароля
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUseCase_Execute_EmptyInput(t *testing.T) {
	repo := newFakeAdminRepo(t, "admin@test.com", "password123")
	uc := NewUseCase(repo, auth.NewManager(config.JWTConfig{Key: testKey}), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Email: "", Password: "password123"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Email: "admin@test.com", Password: ""})
	require.ErrorIs(t, err, ErrInvalidInput)
}
