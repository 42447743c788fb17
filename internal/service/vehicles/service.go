package vehicles

import (
	"context"
	"errors"
	"fmt"

	vehicleRepo "github.com/m04kA/SMC-VehicleRegistry/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-VehicleRegistry/internal/service/vehicles/models"
)

// Service сервис для работы с автомобилями
type Service struct {
	vehicleRepo VehicleRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(vehicleRepo VehicleRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// List получает автомобили с фильтрацией и пагинацией
// Заданные фильтры комбинируются через AND, отсутствующие не накладывают ограничений.
// Параметры пагинации приводятся к допустимым значениям (page >= 1, 1 <= pageSize <= 100).
func (s *Service) List(ctx context.Context, req *models.ListVehiclesRequest) (*models.VehicleListResponse, error) {
	filter := req.ToDomainFilter()
	filter.Normalize()

	s.logger.Info("List: fetching vehicles page=%d pageSize=%d name=%v brand=%v year=%v",
		filter.Page, filter.PageSize, deref(filter.Name), deref(filter.Brand), derefInt(filter.Year))

	vehicles, err := s.vehicleRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	total, err := s.vehicleRepo.CountWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error on count: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d of %d vehicles", len(vehicles), total)
	return models.FromDomainVehicleList(vehicles, filter.Page, filter.PageSize, total), nil
}

// GetByID получает автомобиль по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VehicleResponse, error) {
	s.logger.Info("GetByID: fetching vehicle id=%d", id)

	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("GetByID: vehicle id=%d not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetByID: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVehicle(vehicle), nil
}

// Create создает новую запись об автомобиле
// ID присваивается хранилищем и возвращается в ответе
func (s *Service) Create(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Create: creating vehicle name=%s brand=%s year=%d", req.Name, req.Brand, req.Year)

	created, err := s.vehicleRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: vehicle created id=%d", created.ID)
	return models.FromDomainVehicle(created), nil
}

// Update полностью заменяет изменяемые поля существующего автомобиля
// Возвращает ErrVehicleNotFound, если записи с таким ID нет
func (s *Service) Update(ctx context.Context, req *models.UpdateVehicleRequest) (*models.VehicleResponse, error) {
	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	s.logger.Info("Update: updating vehicle id=%d", req.ID)

	updated, err := s.vehicleRepo.Update(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Update: vehicle id=%d not found", req.ID)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Update: repository error for vehicle id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: vehicle id=%d updated", req.ID)
	return models.FromDomainVehicle(updated), nil
}

// Delete удаляет автомобиль по ID
// Возвращает ErrVehicleNotFound, если записи с таким ID нет
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting vehicle id=%d", id)

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Delete: vehicle id=%d not found", id)
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: vehicle id=%d deleted", id)
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
