package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pawkit/pawkit/internal/models"
	"github.com/pawkit/pawkit/internal/server/jwt"
	"github.com/pawkit/pawkit/internal/server/storage"
	"github.com/pawkit/pawkit/internal/validation"
	"github.com/pawkit/pawkit/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger       *slog.Logger
	userStorage  storage.UserStorage
	tokenStorage storage.TokenStorage
	jwtService   *jwt.Service
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokenStorage storage.TokenStorage, jwtService *jwt.Service) *AuthHandler {
	return &AuthHandler{
		logger:       logger,
		userStorage:  userStorage,
		tokenStorage: tokenStorage,
		jwtService:   jwtService,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация username
	if err := validation.ValidateUsername(req.Username); err != nil {
		h.logger.WarnContext(ctx, "invalid username", slog.String("username", req.Username), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Валидация пароля
	if err := validation.ValidatePassword(req.Password); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Хешируем пароль. Сервер хранит только bcrypt-хеш
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Генерируем UUID для пользователя
	userID := uuid.New().String()

	user := &models.User{
		ID:           userID,
		Username:     req.Username,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now(),
	}

	// Сохраняем в БД
	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", req.Username))
			h.sendError(w, "username already taken", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", req.Username),
		slog.String("user_id", userID))

	resp := api.RegisterResponse{
		UserID:  userID,
		Message: "User registered successfully",
	}

	h.sendJSON(w, resp, http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
// Аутентификация пользователя
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация username
	if err := validation.ValidateUsername(req.Username); err != nil {
		h.logger.WarnContext(ctx, "invalid username", slog.String("username", req.Username), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		h.sendError(w, "password is required", http.StatusBadRequest)
		return
	}

	// Получаем пользователя из БД
	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			h.sendError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Сверяем пароль с bcrypt-хешем
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", req.Username))
		h.sendError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	// Выпускаем пару токенов
	resp, err := h.issueTokens(ctx, user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue tokens", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Обновляем last_login
	now := time.Now()
	if err := h.userStorage.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// Не критичная ошибка, логируем но не прерываем
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", req.Username),
		slog.String("user_id", user.ID))

	h.sendJSON(w, resp, http.StatusOK)
}

// Refresh обрабатывает POST /api/v1/auth/refresh
// Обновление пары токенов: refresh token приходит в теле запроса,
// старый токен отзывается (ротация)
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode refresh request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.RefreshToken == "" {
		h.sendError(w, "refresh token is required", http.StatusUnauthorized)
		return
	}

	// Проверяем refresh token в БД
	storedToken, err := h.tokenStorage.GetRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			h.logger.WarnContext(ctx, "refresh token not found")
			h.sendError(w, "invalid refresh token", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Проверяем срок действия
	if storedToken.Expired(time.Now()) {
		h.logger.WarnContext(ctx, "refresh token expired", slog.String("user_id", storedToken.UserID))
		h.sendError(w, "refresh token expired", http.StatusUnauthorized)
		return
	}

	// Получаем пользователя для генерации нового access token
	user, err := h.userStorage.GetUserByID(ctx, storedToken.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Отзываем старый refresh token
	if err := h.tokenStorage.DeleteRefreshToken(ctx, req.RefreshToken); err != nil {
		h.logger.WarnContext(ctx, "failed to delete old refresh token", slog.Any("error", err))
		// Продолжаем выполнение
	}

	resp, err := h.issueTokens(ctx, user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue tokens", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "tokens refreshed successfully", slog.String("user_id", user.ID))

	h.sendJSON(w, resp, http.StatusOK)
}

// Logout обрабатывает POST /api/v1/auth/logout
// Отзыв refresh token из тела запроса. Пустое тело или пустой
// refreshToken отзывает все токены пользователя (выход со всех устройств).
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Извлекаем access token из Authorization header
	accessToken, ok := bearerToken(r)
	if !ok {
		h.sendError(w, "Authorization header is required", http.StatusUnauthorized)
		return
	}

	// Валидируем и парсим access token
	claims, err := h.jwtService.ValidateAccessToken(accessToken)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid access token", slog.Any("error", err))
		h.sendError(w, "invalid or expired access token", http.StatusUnauthorized)
		return
	}

	var req api.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.RefreshToken == "" {
		// Выход со всех устройств
		deletedCount, err := h.tokenStorage.DeleteUserTokens(ctx, claims.UserID)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to delete user tokens", slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
			return
		}

		h.logger.InfoContext(ctx, "user logged out everywhere",
			slog.String("user_id", claims.UserID),
			slog.Int("tokens_deleted", deletedCount))

		w.WriteHeader(http.StatusNoContent)
		return
	}

	// Отзываем только предъявленный токен, предварительно сверив владельца.
	// Неизвестный токен не считается ошибкой: logout идемпотентен
	storedToken, err := h.tokenStorage.GetRefreshToken(ctx, req.RefreshToken)
	switch {
	case errors.Is(err, storage.ErrTokenNotFound):
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to get refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	case storedToken.UserID != claims.UserID:
		h.logger.WarnContext(ctx, "logout with foreign refresh token", slog.String("user_id", claims.UserID))
	default:
		if err := h.tokenStorage.DeleteRefreshToken(ctx, req.RefreshToken); err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
			h.logger.ErrorContext(ctx, "failed to delete refresh token", slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	h.logger.InfoContext(ctx, "user logged out successfully", slog.String("user_id", claims.UserID))

	w.WriteHeader(http.StatusNoContent)
}

// issueTokens генерирует пару access/refresh токенов и сохраняет refresh в БД
func (h *AuthHandler) issueTokens(ctx context.Context, user *models.User) (api.TokenResponse, error) {
	accessToken, expiresIn, err := h.jwtService.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return api.TokenResponse{}, err
	}

	refreshToken, expiresAt, err := h.jwtService.GenerateRefreshToken()
	if err != nil {
		return api.TokenResponse{}, err
	}

	token := &models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	if err := h.tokenStorage.SaveRefreshToken(ctx, token); err != nil {
		return api.TokenResponse{}, err
	}

	return api.TokenResponse{
		UserID:       user.ID,
		Username:     user.Username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// bearerToken извлекает токен из заголовка Authorization: Bearer <token>
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	const bearerPrefix = "Bearer "
	if len(authHeader) < len(bearerPrefix) || authHeader[:len(bearerPrefix)] != bearerPrefix {
		return "", false
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", false
	}

	return token, true
}

// sendJSON отправляет JSON ответ
func (h *AuthHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *AuthHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Code:    http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
