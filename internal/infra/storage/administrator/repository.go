package administrator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
	"github.com/m04kA/SMC-VehicleRegistry/pkg/psqlbuilder"
)

// Repository репозиторий для работы с учетными записями администраторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую учетную запись администратора
// Профиль сериализуется из enum в строку на границе хранилища
func (r *Repository) Create(ctx context.Context, admin *domain.Administrator) (*domain.Administrator, error) {
	query, args, err := psqlbuilder.Insert("administrators").
		Columns("email", "password_hash", "profile").
		Values(admin.Email, admin.PasswordHash, string(admin.Profile)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&admin.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	admin.CreatedAt = createdAt.Time

	return admin, nil
}

// GetByEmail получает администратора по email (точное, регистрозависимое совпадение)
// При нескольких записях с одинаковым email возвращается первая по id
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Administrator, error) {
	query, args, err := psqlbuilder.Select("id", "email", "password_hash", "profile", "created_at").
		From("administrators").
		Where(squirrel.Eq{"email": email}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var admin domain.Administrator
	var profile string
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&profile,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdministratorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan administrator: %v", ErrScanRow, err)
	}

	admin.Profile = domain.Profile(profile)
	admin.CreatedAt = createdAt.Time

	return &admin, nil
}

// Count возвращает количество учетных записей администраторов
// Используется при старте сервиса для решения о создании стартового администратора
func (r *Repository) Count(ctx context.Context) (int64, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("administrators").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return total, nil
}
