package register

import (
	"context"

	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

// AdministratorRepository интерфейс репозитория администраторов
type AdministratorRepository interface {
	Create(ctx context.Context, admin *domain.Administrator) (*domain.Administrator, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
