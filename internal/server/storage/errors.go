package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrEntityNotFound indicates that entity was not found
	ErrEntityNotFound = errors.New("entity not found")

	// ErrVersionMismatch indicates that the expected version does not match
	// the version stored on the server
	ErrVersionMismatch = errors.New("version mismatch")
)
