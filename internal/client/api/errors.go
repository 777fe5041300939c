package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pawkit/pawkit/pkg/api"
)

// Сентинелы для errors.Is по классам ответов сервера
var (
	// ErrUnauthorized сервер отверг токен (401)
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound сущность не существует на сервере (404)
	ErrNotFound = errors.New("entity not found on server")
	// ErrConflict версия сущности разошлась с серверной (409)
	ErrConflict = errors.New("version conflict")
)

// Error представляет не-2xx ответ сервера
type Error struct {
	Message    string // человекочитаемое описание из тела ответа
	Code       string // машинный код ошибки, если сервер его прислал
	StatusCode int    // HTTP статус
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("server error (%d, %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Is сопоставляет ошибку с сентинелами по статусу
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	}
	return false
}

// ConflictError возвращается на PATCH, когда expectedVersion не совпала
// с версией на сервере. Несет серверную копию сущности для резолвера.
type ConflictError struct {
	ServerEntity *api.Entity // актуальное состояние на сервере
	Message      string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict: %s", e.Message)
}

// Is позволяет errors.Is(err, ErrConflict)
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// IsTransient reports whether the error may succeed on a plain retry:
// network failures, timeouts and 5xx responses. Authentication, not-found
// and conflict responses are permanent for the request that caused them.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == http.StatusTooManyRequests
	}

	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return false
	}

	// Остальное относится к транспортным ошибкам: DNS, connection refused, timeout
	return true
}
