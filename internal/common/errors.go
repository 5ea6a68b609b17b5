// Package common defines shared constants and sentinel errors used across
// the storage, service and HTTP layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrValidation    = errors.New("validation error")
	ErrNotConfigured = errors.New("not configured")
)
