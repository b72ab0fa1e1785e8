package models

import "github.com/pkg/errors"

// Error kinds surfaced to the API layer. Handlers wrap these with context,
// controllers map them to HTTP statuses.
var (
	ErrUnauthenticated   = errors.New("not authenticated")
	ErrForbidden         = errors.New("operation not allowed")
	ErrNotFound          = errors.New("record not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("conflicting record already exists")
	ErrStoreUnavailable  = errors.New("storage temporarily unavailable")
)
