package authenticate

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	// Причина (нет такой учетной записи или не совпал пароль) наружу не раскрывается
	ErrInvalidCredentials = errors.New("authenticate: invalid email or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("authenticate: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("authenticate: internal error")
)
