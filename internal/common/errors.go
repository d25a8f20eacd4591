package common

import "errors"

// Shared error kinds for every service in the platform. Services wrap these
// with operation context (fmt.Errorf("tenant.Create: %w: ...", ErrValidation))
// so handlers and tests can classify failures with errors.Is instead of
// matching message text.
var (
	// ErrValidation marks malformed or missing required input.
	ErrValidation = errors.New("validation failed")
	// ErrConflict marks a uniqueness violation reported by the storage layer.
	ErrConflict = errors.New("conflict")
	// ErrNotFound marks a lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrStorage marks any underlying storage or I/O failure.
	ErrStorage = errors.New("storage failure")
)
