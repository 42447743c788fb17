package domain

import "time"

// Profile профиль доступа администратора
type Profile string

const (
	ProfileAdmin  Profile = "admin"
	ProfileEditor Profile = "editor"
)

// IsValid возвращает true, если профиль является одним из известных значений
func (p Profile) IsValid() bool {
	return p == ProfileAdmin || p == ProfileEditor
}

// Administrator учетная запись администратора
// PasswordHash хранит bcrypt-хеш пароля, исходный пароль нигде не сохраняется
type Administrator struct {
	ID           int64
	Email        string
	PasswordHash string
	Profile      Profile

	CreatedAt time.Time
}
