package auth

import "errors"

var (
	// ErrTokenInvalid возвращается при любой ошибке валидации токена:
	// неверная подпись, истекший срок, неожиданный issuer/audience, битый формат
	ErrTokenInvalid = errors.New("auth: invalid token")

	// ErrSignToken возвращается при ошибке подписи токена
	ErrSignToken = errors.New("auth: failed to sign token")
)
