package domain

import "errors"

var (
	// ErrStorageUnavailable wraps driver connection failures so callers can
	// substitute fallback data instead of erroring.
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrSelfPurchase       = errors.New("cannot buy own product")
	ErrOrderConflict      = errors.New("product has an active order")
	ErrAlreadyFavorited   = errors.New("favorite already exists")
)
