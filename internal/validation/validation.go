// Package validation - декларативные проверки входных DTO
// Ошибки собираются в список пар (поле, сообщение) и возвращаются клиенту целиком,
// сервисный слой при этом не вызывается
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-VehicleRegistry/internal/domain"
)

// FieldError ошибка валидации одного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors список ошибок валидации, реализует error
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors возвращает true, если есть хотя бы одна ошибка
func (e Errors) HasErrors() bool {
	return len(e) > 0
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// Пароль: минимум 8 символов, хотя бы одна строчная и заглавная буква,
	// цифра и спецсимвол из фиксированного набора; другие символы не допускаются
	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordDigit   = regexp.MustCompile(`\d`)
	passwordSymbol  = regexp.MustCompile(`[@$!%*?&]`)
	passwordCharset = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]+$`)
)

// ValidateEmail проверяет email: обязателен, формат RFC, ограничение длины
func ValidateEmail(email string) Errors {
	var errs Errors

	if strings.TrimSpace(email) == "" {
		return append(errs, FieldError{Field: "email", Message: "Email is required"})
	}
	if len(email) > domain.MaxEmailLength {
		errs = append(errs, FieldError{
			Field:   "email",
			Message: fmt.Sprintf("Email cannot exceed %d characters", domain.MaxEmailLength),
		})
	}
	if !emailRegex.MatchString(email) {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email format"})
	}

	return errs
}

// ValidatePassword проверяет пароль на соответствие составной политике
func ValidatePassword(password string) Errors {
	var errs Errors

	if password == "" {
		return append(errs, FieldError{Field: "password", Message: "Password is required"})
	}
	if len(password) > domain.MaxPasswordLength {
		errs = append(errs, FieldError{
			Field:   "password",
			Message: fmt.Sprintf("Password cannot exceed %d characters", domain.MaxPasswordLength),
		})
	}

	if len(password) < domain.MinPasswordLength ||
		!passwordLower.MatchString(password) ||
		!passwordUpper.MatchString(password) ||
		!passwordDigit.MatchString(password) ||
		!passwordSymbol.MatchString(password) ||
		!passwordCharset.MatchString(password) {
		errs = append(errs, FieldError{
			Field: "password",
			Message: "Password must contain at least 8 characters, one uppercase letter, " +
				"one lowercase letter, one number and one special character",
		})
	}

	return errs
}

// ValidateProfile проверяет, что профиль является одним из известных значений
func ValidateProfile(profile string) Errors {
	var errs Errors

	if strings.TrimSpace(profile) == "" {
		return append(errs, FieldError{Field: "profile", Message: "Profile is required"})
	}
	if !domain.Profile(profile).IsValid() {
		errs = append(errs, FieldError{
			Field:   "profile",
			Message: fmt.Sprintf("Profile must be one of: %s, %s", domain.ProfileAdmin, domain.ProfileEditor),
		})
	}

	return errs
}

// ValidateLogin проверяет тело запроса /login
// Политика сложности пароля здесь не применяется - только обязательность полей
func ValidateLogin(email, password string) Errors {
	var errs Errors

	errs = append(errs, ValidateEmail(email)...)
	if password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	}

	return errs
}

// ValidateRegistration проверяет тело запроса /register
func ValidateRegistration(email, password, profile string) Errors {
	var errs Errors

	errs = append(errs, ValidateEmail(email)...)
	errs = append(errs, ValidatePassword(password)...)
	errs = append(errs, ValidateProfile(profile)...)

	return errs
}

// ValidateVehicle проверяет поля автомобиля для создания и обновления
func ValidateVehicle(name, brand string, year int) Errors {
	var errs Errors

	trimmedName := strings.TrimSpace(name)
	switch {
	case trimmedName == "":
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	case len(trimmedName) < domain.MinVehicleNameLength || len(trimmedName) > domain.MaxVehicleNameLength:
		errs = append(errs, FieldError{
			Field: "name",
			Message: fmt.Sprintf("Name must be between %d and %d characters",
				domain.MinVehicleNameLength, domain.MaxVehicleNameLength),
		})
	}

	trimmedBrand := strings.TrimSpace(brand)
	switch {
	case trimmedBrand == "":
		errs = append(errs, FieldError{Field: "brand", Message: "Brand is required"})
	case len(trimmedBrand) < domain.MinVehicleBrandLength || len(trimmedBrand) > domain.MaxVehicleBrandLength:
		errs = append(errs, FieldError{
			Field: "brand",
			Message: fmt.Sprintf("Brand must be between %d and %d characters",
				domain.MinVehicleBrandLength, domain.MaxVehicleBrandLength),
		})
	}

	if year < domain.MinVehicleYear || year > domain.MaxVehicleYear {
		errs = append(errs, FieldError{
			Field: "year",
			Message: fmt.Sprintf("Year must be between %d and %d",
				domain.MinVehicleYear, domain.MaxVehicleYear),
		})
	}

	return errs
}
