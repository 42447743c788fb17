package list_vehicles

import (
	"strconv"

	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
	"github.com/m04kA/SMC-VehicleRegistry/internal/service/vehicles/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Пустые name/brand означают отсутствие фильтра; year парсится только при наличии значения
func ToServiceRequest(pageStr, pageSizeStr, name, brand, yearStr string) (*models.ListVehiclesRequest, error) {
	req := &models.ListVehiclesRequest{
		Page:     domain.DefaultPage,
		PageSize: domain.DefaultPageSize,
	}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, err
		}
		req.Page = page
	}

	if pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil {
			return nil, err
		}
		req.PageSize = pageSize
	}

	if name != "" {
		req.Name = &name
	}

	if brand != "" {
		req.Brand = &brand
	}

	if yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, err
		}
		req.Year = &year
	}

	return req, nil
}
