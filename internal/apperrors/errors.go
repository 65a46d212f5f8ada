package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found
// (or is soft-deleted and therefore invisible to normal reads).
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrSaldoInsuficiente indicates a withdrawal larger than the current account balance.
var ErrSaldoInsuficiente = errors.New("saldo insuficiente")
