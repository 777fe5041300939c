package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/pawkit/pawkit/internal/models"
	"github.com/pawkit/pawkit/pkg/api"
)

const (
	// listRetries дополнительные попытки идемпотентного GET при временных сбоях
	listRetries = 2
	// listRetryBase базовый интервал fibonacci-backoff между попытками
	listRetryBase = 500 * time.Millisecond
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару токенов
func (c *Client) Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout отзывает refresh token на сервере
func (c *Client) Logout(ctx context.Context, token, refreshToken string) error {
	req := api.LogoutRequest{RefreshToken: refreshToken}
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", token, req, nil)
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Ping проверяет доступность сервера. Используется как connectivity probe
// перед синхронизацией, поэтому не ретраится.
func (c *Client) Ping(ctx context.Context) error {
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil, nil)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// ListEntities запрашивает сущности типа, измененные после since
// (Unix-миллисекунды; 0 вернет все). Ответ включает tombstones, чтобы удаления
// распространялись. Идемпотентный GET, поэтому временные сбои ретраятся
// с fibonacci-backoff.
func (c *Client) ListEntities(ctx context.Context, token string, entityType models.EntityType, workspaceID string, since int64) (*api.ListResponse, error) {
	path := fmt.Sprintf("/api/v1/%s?workspaceId=%s&since=%d&deleted=true",
		entityType, url.QueryEscape(workspaceID), since)

	var resp api.ListResponse

	backoff := retry.WithMaxRetries(listRetries, retry.NewFibonacci(listRetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp = api.ListResponse{}
		if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
			if IsTransient(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s request failed: %w", entityType, err)
	}
	return &resp, nil
}

// CreateEntity создает сущность на сервере. Статус 200 вместо 201 означает,
// что сущность уже существует; для клиента это тоже успех (идемпотентный
// create при повторной отправке).
func (c *Client) CreateEntity(ctx context.Context, token string, entityType models.EntityType, entity api.Entity) (*api.Entity, error) {
	path := fmt.Sprintf("/api/v1/%s", entityType)

	var resp api.Entity
	err := c.doRequest(ctx, http.MethodPost, path, token, entity, &resp)
	if err != nil {
		return nil, fmt.Errorf("create %s request failed: %w", entityType, err)
	}
	return &resp, nil
}

// UpdateEntity частично обновляет сущность. При несовпадении expectedVersion
// сервер отвечает 409 с кодом VERSION_CONFLICT, и тогда возвращается
// *ConflictError с серверной копией для резолвера.
func (c *Client) UpdateEntity(ctx context.Context, token string, entityType models.EntityType, id string, req api.UpdateRequest) (*api.Entity, error) {
	path := fmt.Sprintf("/api/v1/%s/%s", entityType, url.PathEscape(id))

	var resp api.Entity
	err := c.doRequest(ctx, http.MethodPatch, path, token, req, &resp)
	if err != nil {
		var conflictErr *ConflictError
		if errors.As(err, &conflictErr) {
			return nil, conflictErr
		}
		return nil, fmt.Errorf("update %s request failed: %w", entityType, err)
	}
	return &resp, nil
}

// DeleteEntity удаляет сущность на сервере. 404 означает, что сущность
// уже отсутствует; вызывающий различает это через errors.Is(err, ErrNotFound).
func (c *Client) DeleteEntity(ctx context.Context, token string, entityType models.EntityType, id string) error {
	path := fmt.Sprintf("/api/v1/%s/%s", entityType, url.PathEscape(id))

	err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil)
	if err != nil {
		return fmt.Errorf("delete %s request failed: %w", entityType, err)
	}
	return nil
}

// doRequest выполняет HTTP запрос. При непустом token добавляется
// заголовок Authorization: Bearer.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// apiError превращает не-2xx ответ в типизированную ошибку
func apiError(statusCode int, body []byte) error {
	// 409 с кодом VERSION_CONFLICT несет серверную копию сущности
	if statusCode == http.StatusConflict {
		var conflict api.ConflictResponse
		if err := json.Unmarshal(body, &conflict); err == nil && conflict.Code == api.CodeVersionConflict {
			return &ConflictError{
				ServerEntity: conflict.ServerEntity,
				Message:      conflict.Message,
			}
		}
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &Error{
			StatusCode: statusCode,
			Code:       errResp.Code,
			Message:    errResp.Message,
		}
	}

	return &Error{
		StatusCode: statusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}
