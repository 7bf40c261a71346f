// Package common defines sentinel errors and small helpers shared by the
// storage, service and transport layers of credkeeper. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// ErrorStorageUnavailable is returned by every repository call when the
	// server runs without a reachable backend (development mode only).
	ErrorStorageUnavailable = errors.New("storage unavailable")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")
)
