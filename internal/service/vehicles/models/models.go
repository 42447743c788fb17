package models

import (
	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

// Request модели

// ListVehiclesRequest запрос на получение списка автомобилей
type ListVehiclesRequest struct {
	Name  *string `json:"name,omitempty"`  // Фильтр по подстроке названия (опционально)
	Brand *string `json:"brand,omitempty"` // Фильтр по подстроке марки (опционально)
	Year  *int    `json:"year,omitempty"`  // Фильтр по точному году (опционально)

	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListVehiclesRequest) ToDomainFilter() domain.VehicleFilter {
	return domain.VehicleFilter{
		Name:     r.Name,
		Brand:    r.Brand,
		Year:     r.Year,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

// CreateVehicleRequest запрос на создание автомобиля
type CreateVehicleRequest struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// ToDomain конвертирует request в domain сущность
func (r *CreateVehicleRequest) ToDomain() *domain.Vehicle {
	return &domain.Vehicle{
		Name:  r.Name,
		Brand: r.Brand,
		Year:  r.Year,
	}
}

// UpdateVehicleRequest запрос на полное обновление автомобиля
type UpdateVehicleRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// ToDomain конвертирует request в domain сущность
func (r *UpdateVehicleRequest) ToDomain() *domain.Vehicle {
	return &domain.Vehicle{
		ID:    r.ID,
		Name:  r.Name,
		Brand: r.Brand,
		Year:  r.Year,
	}
}

// Response модели

// VehicleResponse ответ с данными автомобиля
type VehicleResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Year      int    `json:"year"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// VehicleListResponse пагинированный ответ со списком автомобилей
type VehicleListResponse struct {
	Items           []*VehicleResponse `json:"items"`
	PageNumber      int                `json:"pageNumber"`
	PageSize        int                `json:"pageSize"`
	TotalPages      int                `json:"totalPages"`
	TotalItems      int64              `json:"totalItems"`
	HasPreviousPage bool               `json:"hasPreviousPage"`
	HasNextPage     bool               `json:"hasNextPage"`
}

// FromDomainVehicle конвертирует domain сущность в response
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:        v.ID,
		Name:      v.Name,
		Brand:     v.Brand,
		Year:      v.Year,
		CreatedAt: v.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: v.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainVehicleList формирует пагинированный ответ
func FromDomainVehicleList(vehicles []*domain.Vehicle, page, pageSize int, totalItems int64) *VehicleListResponse {
	items := make([]*VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		items = append(items, FromDomainVehicle(v))
	}

	totalPages := int(totalItems) / pageSize
	if int(totalItems)%pageSize != 0 {
		totalPages++
	}

	return &VehicleListResponse{
		Items:           items,
		PageNumber:      page,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		TotalItems:      totalItems,
		HasPreviousPage: page > 1,
		HasNextPage:     page < totalPages,
	}
}
