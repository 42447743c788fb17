package register

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAdminRepo struct {
	created *domain.Administrator
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *domain.Administrator) (*domain.Administrator, error) {
	admin.ID = 1
	r.created = admin
	return admin, nil
}

func TestUseCase_Execute_HashesPassword(t *testing.T) {
	repo := &fakeAdminRepo{}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Email:    "editor@test.com",
		Password: "Password1!",
		Profile:  "editor",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "editor@test.com", resp.Email)
	assert.Equal(t, "editor", resp.Profile)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.ProfileEditor, repo.created.Profile)

	// Исходный пароль не сохраняется, хеш проверяется bcrypt-ом
	assert.NotEqual(t, "Password1!", repo.created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.created.PasswordHash), []byte("Password1!")))
}

func TestUseCase_Execute_UnknownProfile(t *testing.T) {
	uc := NewUseCase(&fakeAdminRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Email:    "editor@test.com",
		Password: "Password1!",
		Profile:  "superuser",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_MissingFields(t *testing.T) {
	uc := NewUseCase(&fakeAdminRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Password: "Password1!", Profile: "admin"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Email: "a@b.com", Profile: "admin"})
	require.ErrorIs(t, err, ErrInvalidInput)
}
