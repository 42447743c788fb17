package list_vehicles

import (
	"context"

	"github.com/m04kA/SMC-VehicleRegistry/internal/service/vehicles/models"
)

type VehicleService interface {
	List(ctx context.Context, req *models.ListVehiclesRequest) (*models.VehicleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
