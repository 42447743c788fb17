// Package authenticate - аутентификация администратора и выпуск токена доступа
package authenticate

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	adminRepo "github.com/m04kA/SMC-VehicleRegistry/internal/infra/storage/administrator"
)

// UseCase аутентифицирует администратора по email и паролю и выпускает токен
type UseCase struct {
	adminRepo AdministratorRepository
	issuer    TokenIssuer
	logger    Logger
}

// NewUseCase создает новый экземпляр usecase аутентификации
func NewUseCase(adminRepo AdministratorRepository, issuer TokenIssuer, logger Logger) *UseCase {
	return &UseCase{
		adminRepo: adminRepo,
		issuer:    issuer,
		logger:    logger,
	}
}

// Execute проверяет учетные данные и выпускает токен
// Сравнение пароля выполняется с bcrypt-хешем (константное время);
// неверный email и неверный пароль неразличимы для клиента
func (u *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	u.logger.Info("Execute: login attempt email=%s", req.Email)

	admin, err := u.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdministratorNotFound) {
			u.logger.Warn("Execute: unknown email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		u.logger.Error("Execute: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Execute - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		u.logger.Warn("Execute: password mismatch email=%s", req.Email)
		return nil, ErrInvalidCredentials
	}

	token, err := u.issuer.Issue(admin)
	if err != nil {
		u.logger.Error("Execute: failed to issue token for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Execute - issue token: %v", ErrInternal, err)
	}

	u.logger.Info("Execute: login successful email=%s profile=%s", admin.Email, admin.Profile)
	return FromTokenResponse(token), nil
}
