// Package errors defines the application error taxonomy returned by use cases.
// Every failure that leaves a use case is an AppError, so the delivery layer can
// render it without inspecting provider-specific errors.
package errors

import (
	"fmt"
	"net/http"

	"inventory/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() any      // Structured context, e.g. the offending ids (optional)
}

// BaseError is the common AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}

	return e.message
}

// Unwrap exposes the underlying cause, if any.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches errors sharing the same error code, so copies made by the With* helpers
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns structured error context
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy carrying the given details.
func (e *BaseError) WithDetails(details any) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

// WithMessage returns a copy with a more specific user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	cloned := *e
	cloned.message = message

	return &cloned
}

// WithMessagef is WithMessage with formatting.
func (e *BaseError) WithMessagef(format string, args ...any) *BaseError {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// WithCause returns a copy wrapping the underlying error.
func (e *BaseError) WithCause(err error) *BaseError {
	cloned := *e
	cloned.cause = err

	return &cloned
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Predefined error types
var (
	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		nil,
	)

	ErrTypeMismatch = NewBaseError(
		http.StatusBadRequest,
		"TYPE_MISMATCH",
		"device type does not match the shelf type",
		nil,
	)

	ErrTypeChangeNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"TYPE_CHANGE_NOT_ALLOWED",
		"shelf type can only change while the shelf is empty",
		nil,
	)

	ErrAlreadyRemoved = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_REMOVED",
		"device is already removed",
		nil,
	)

	ErrNotRemoved = NewBaseError(
		http.StatusBadRequest,
		"NOT_REMOVED",
		"device is not removed",
		nil,
	)

	// Workflow conflicts
	ErrCapacityExceeded = NewBaseError(
		http.StatusConflict,
		"CAPACITY_EXCEEDED",
		"shelf cannot hold the requested devices",
		nil,
	)

	ErrDuplicateID = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ID",
		"one or more device ids already exist",
		nil,
	)

	ErrBatchLimitExceeded = NewBaseError(
		http.StatusUnprocessableEntity,
		"BATCH_LIMIT_EXCEEDED",
		"operation exceeds the maximum number of writes per commit",
		nil,
	)

	// Reference errors
	ErrShelfNotFound = NewBaseError(
		http.StatusNotFound,
		"SHELF_NOT_FOUND",
		"shelf not found",
		nil,
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		nil,
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		nil,
	)

	// Authorization errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"authentication required",
		nil,
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"admin permission required",
		nil,
	)

	// Store and provider failures
	ErrStoreCommitFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORE_COMMIT_FAILED",
		"failed to commit changes",
		nil,
	)

	ErrInternalConsistency = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_CONSISTENCY",
		"inventory counters are inconsistent",
		nil,
	)

	ErrClaimUpdateFailed = NewBaseError(
		http.StatusBadGateway,
		"CLAIM_UPDATE_FAILED",
		"failed to update admin claim",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		nil,
	)
)

// CapacityDetails is attached to ErrCapacityExceeded.
type CapacityDetails struct {
	ShelfName string `json:"shelf_name"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// IDsDetails names the device ids an error refers to.
type IDsDetails struct {
	IDs []string `json:"ids"`
}

// NewCapacityExceeded reports that shelfName cannot take requested more devices.
func NewCapacityExceeded(shelfName string, requested, available int) *BaseError {
	return ErrCapacityExceeded.
		WithMessagef("shelf %s cannot hold %d more device(s), %d slot(s) available", shelfName, requested, available).
		WithDetails(CapacityDetails{ShelfName: shelfName, Requested: requested, Available: available})
}

// NewDuplicateID reports device ids that already exist.
func NewDuplicateID(ids []string) *BaseError {
	return ErrDuplicateID.WithDetails(IDsDetails{IDs: ids})
}

// NewValidation reports malformed input with a specific message.
func NewValidation(message string) *BaseError {
	return ErrValidationFailed.WithMessage(message)
}

// NewStoreCommitFailure reports a failed atomic commit. The store's own message is kept
// so the caller sees the failure verbatim.
func NewStoreCommitFailure(err error) *BaseError {
	return ErrStoreCommitFailed.WithMessagef("failed to commit changes: %v", err).WithCause(err)
}

// AsAppError returns err as an AppError, wrapping anything else into fallback.
func AsAppError(err error, fallback *BaseError) AppError {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return fallback.WithCause(err)
}
