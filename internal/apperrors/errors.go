package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated user lacks the required capability.
var ErrForbidden = errors.New("forbidden")

// ErrVersionConflict indicates a write against a stale settings version.
var ErrVersionConflict = errors.New("version conflict")

// ErrInsufficientStock indicates a sale whose quantity exceeds the item's
// current stock.
var ErrInsufficientStock = errors.New("insufficient stock")
