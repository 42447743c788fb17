package vehicle

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
	"github.com/m04kA/SMC-VehicleRegistry/pkg/psqlbuilder"
)

// Repository репозиторий для работы с автомобилями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись об автомобиле
// ID присваивается базой данных и возвращается в сущности
func (r *Repository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query, args, err := psqlbuilder.Insert("vehicles").
		Columns("name", "brand", "year").
		Values(vehicle.Name, vehicle.Brand, vehicle.Year).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&vehicle.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	vehicle.CreatedAt = createdAt.Time
	vehicle.UpdatedAt = updatedAt.Time

	return vehicle, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	query, args, err := psqlbuilder.Select("id", "name", "brand", "year", "created_at", "updated_at").
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var vehicle domain.Vehicle
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&vehicle.ID,
		&vehicle.Name,
		&vehicle.Brand,
		&vehicle.Year,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}

	vehicle.CreatedAt = createdAt.Time
	vehicle.UpdatedAt = updatedAt.Time

	return &vehicle, nil
}

// GetWithFilter получает автомобили с фильтрацией и пагинацией
// Фильтры по названию и марке - регистрозависимый поиск подстроки,
// по году - точное совпадение; заданные фильтры комбинируются через AND.
// Сортировка по id ASC для детерминированной пагинации.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.VehicleFilter) ([]*domain.Vehicle, error) {
	selectBuilder := psqlbuilder.Select("id", "name", "brand", "year", "created_at", "updated_at").
		From("vehicles")

	selectBuilder = applyFilter(selectBuilder, filter)

	query, args, err := selectBuilder.
		OrderBy("id ASC").
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVehicles(rows)
}

// CountWithFilter возвращает общее количество автомобилей под фильтром (без пагинации)
// Используется для формирования пагинированного ответа
func (r *Repository) CountWithFilter(ctx context.Context, filter domain.VehicleFilter) (int64, error) {
	countBuilder := psqlbuilder.Select("COUNT(*)").From("vehicles")
	countBuilder = applyFilter(countBuilder, filter)

	query, args, err := countBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountWithFilter - scan count: %v", ErrScanRow, err)
	}

	return total, nil
}

// Update полностью заменяет изменяемые поля автомобиля по ID
// Возвращает ErrVehicleNotFound, если записи с таким ID нет (upsert не выполняется)
func (r *Repository) Update(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query, args, err := psqlbuilder.Update("vehicles").
		Set("name", vehicle.Name).
		Set("brand", vehicle.Brand).
		Set("year", vehicle.Year).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": vehicle.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	vehicle.CreatedAt = createdAt.Time
	vehicle.UpdatedAt = updatedAt.Time

	return vehicle, nil
}

// Delete удаляет автомобиль по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

// applyFilter добавляет условия фильтрации к запросу
// Пустые (nil) фильтры не накладывают ограничений
func applyFilter(b squirrel.SelectBuilder, filter domain.VehicleFilter) squirrel.SelectBuilder {
	if filter.Name != nil && *filter.Name != "" {
		b = b.Where(squirrel.Like{"name": "%" + *filter.Name + "%"})
	}
	if filter.Brand != nil && *filter.Brand != "" {
		b = b.Where(squirrel.Like{"brand": "%" + *filter.Brand + "%"})
	}
	if filter.Year != nil {
		b = b.Where(squirrel.Eq{"year": *filter.Year})
	}
	return b
}

// scanVehicles сканирует результаты запроса в слайс автомобилей
func (r *Repository) scanVehicles(rows *sql.Rows) ([]*domain.Vehicle, error) {
	vehicles := make([]*domain.Vehicle, 0)

	for rows.Next() {
		var vehicle domain.Vehicle
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&vehicle.ID,
			&vehicle.Name,
			&vehicle.Brand,
			&vehicle.Year,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanVehicles - scan row: %v", ErrScanRow, err)
		}

		vehicle.CreatedAt = createdAt.Time
		vehicle.UpdatedAt = updatedAt.Time

		vehicles = append(vehicles, &vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVehicles - rows error: %v", ErrScanRow, err)
	}

	return vehicles, nil
}
