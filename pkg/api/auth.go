package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль (хешируется на сервере, bcrypt)
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	UserID  string `json:"userId"`  // UUID пользователя
	Message string `json:"message"` // сообщение об успешной регистрации
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль
}

// TokenResponse представляет ответ с токенами доступа
type TokenResponse struct {
	UserID       string `json:"userId"`       // UUID пользователя
	Username     string `json:"username"`     // username пользователя
	AccessToken  string `json:"accessToken"`  // JWT access token
	RefreshToken string `json:"refreshToken"` // refresh token
	ExpiresIn    int64  `json:"expiresIn"`    // время жизни access token в секундах
}

// RefreshRequest представляет запрос на обновление пары токенов
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"` // действующий refresh token
}

// LogoutRequest представляет запрос на выход: refresh token отзывается
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"` // отзываемый refresh token
}
