// Package register - регистрация новой учетной записи администратора
package register

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

// UseCase создает учетную запись администратора
// Пароль хешируется bcrypt, в хранилище исходный пароль не попадает
type UseCase struct {
	adminRepo AdministratorRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр usecase регистрации
func NewUseCase(adminRepo AdministratorRepository, logger Logger) *UseCase {
	return &UseCase{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// Execute хеширует пароль и сохраняет учетную запись
// Уникальность email не проверяется: при входе используется первая запись по id
func (u *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	u.logger.Info("Execute: registering administrator email=%s profile=%s", req.Email, req.Profile)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.logger.Error("Execute: failed to hash password for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Execute - hash password: %v", ErrInternal, err)
	}

	admin := &domain.Administrator{
		Email:        req.Email,
		PasswordHash: string(hash),
		Profile:      domain.Profile(req.Profile),
	}

	created, err := u.adminRepo.Create(ctx, admin)
	if err != nil {
		u.logger.Error("Execute: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Execute - repository error: %v", ErrInternal, err)
	}

	u.logger.Info("Execute: administrator created id=%d email=%s", created.ID, created.Email)
	return FromDomainAdministrator(created), nil
}
