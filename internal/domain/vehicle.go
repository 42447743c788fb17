package domain

import "time"

// Vehicle запись об автомобиле в реестре
type Vehicle struct {
	ID    int64
	Name  string
	Brand string
	Year  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VehicleFilter фильтр для выборки автомобилей
// Опциональные поля (nil) не накладывают ограничений, заданные комбинируются через AND
type VehicleFilter struct {
	Name  *string // Подстрока в названии (регистрозависимая)
	Brand *string // Подстрока в марке (регистрозависимая)
	Year  *int    // Точное совпадение года

	Page     int // Номер страницы, начиная с 1
	PageSize int // Размер страницы
}

// Normalize приводит параметры пагинации к допустимым значениям
// page < 1 -> 1, pageSize < 1 -> DefaultPageSize, pageSize > MaxPageSize -> MaxPageSize
func (f *VehicleFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}

// Offset возвращает смещение для SQL запроса
func (f *VehicleFilter) Offset() uint64 {
	return uint64((f.Page - 1) * f.PageSize)
}

// Limit возвращает лимит для SQL запроса
func (f *VehicleFilter) Limit() uint64 {
	return uint64(f.PageSize)
}
