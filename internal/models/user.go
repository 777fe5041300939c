package models

import "time"

// User представляет учетную запись на сервере синхронизации
type User struct {
	ID           string     `json:"id"`        // UUID пользователя
	Username     string     `json:"username"`  // уникальный username
	PasswordHash string     `json:"-"`         // bcrypt хеш пароля, наружу не отдаем
	CreatedAt    time.Time  `json:"createdAt"` // время регистрации
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// RefreshToken представляет выданный refresh token.
// Сам токен служит первичным ключом: он непрозрачный (crypto/rand)
// и сервер хранит его только для сверки при refresh/logout.
type RefreshToken struct {
	Token     string    `json:"-"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired сообщает, истек ли токен относительно переданного момента.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
