package services

import "errors"

// Sentinel errors translated to HTTP status codes at the handler boundary.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrCapacityExceeded = errors.New("family guest allowance exceeded")
)
