package authenticate

import (
	"context"

	"github.com/m04kA/SMC-VehicleRegistry/internal/auth"
	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

// AdministratorRepository интерфейс репозитория администраторов
type AdministratorRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Administrator, error)
}

// TokenIssuer интерфейс выпуска токенов
type TokenIssuer interface {
	Issue(administrator *domain.Administrator) (*auth.TokenResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
