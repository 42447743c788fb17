package update_vehicle

import (
	"github.com/m04kA/SMC-VehicleRegistry/internal/service/vehicles/models"
)

// UpdateVehicleRequest HTTP request model
type UpdateVehicleRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateVehicleRequest) ToServiceRequest() *models.UpdateVehicleRequest {
	return &models.UpdateVehicleRequest{
		ID:    r.ID,
		Name:  r.Name,
		Brand: r.Brand,
		Year:  r.Year,
	}
}
