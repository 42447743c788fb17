package vehicles

import (
	"context"

	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetWithFilter(ctx context.Context, filter domain.VehicleFilter) ([]*domain.Vehicle, error)
	CountWithFilter(ctx context.Context, filter domain.VehicleFilter) (int64, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
