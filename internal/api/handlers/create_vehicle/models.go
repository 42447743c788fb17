package create_vehicle

import (
	"github.com/m04kA/SMC-VehicleRegistry/internal/service/vehicles/models"
)

// CreateVehicleRequest HTTP request model
// ID не принимается: он присваивается хранилищем
type CreateVehicleRequest struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateVehicleRequest) ToServiceRequest() *models.CreateVehicleRequest {
	return &models.CreateVehicleRequest{
		Name:  r.Name,
		Brand: r.Brand,
		Year:  r.Year,
	}
}
