// Package errors provides application-level error types and utilities.
// Every failure that crosses the use case boundary is an *AppError whose Type
// decides the HTTP status the handlers answer with.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation      ErrorType = "validation_error"
	ErrorTypeNotFound        ErrorType = "not_found"
	ErrorTypeConflict        ErrorType = "conflict"
	ErrorTypeUnauthorized    ErrorType = "unauthorized"
	ErrorTypeForbidden       ErrorType = "forbidden"
	ErrorTypeExpired         ErrorType = "expired"
	ErrorTypeInvalidAssignee ErrorType = "invalid_assignee"
	ErrorTypeMailDispatch    ErrorType = "mail_dispatch_error"
	ErrorTypeRateLimited     ErrorType = "rate_limited"
	ErrorTypeInternal        ErrorType = "internal_error"
)

var statusByType = map[ErrorType]int{
	ErrorTypeValidation:      http.StatusBadRequest,
	ErrorTypeNotFound:        http.StatusNotFound,
	ErrorTypeConflict:        http.StatusConflict,
	ErrorTypeUnauthorized:    http.StatusUnauthorized,
	ErrorTypeForbidden:       http.StatusForbidden,
	ErrorTypeExpired:         http.StatusGone,
	ErrorTypeInvalidAssignee: http.StatusUnprocessableEntity,
	ErrorTypeMailDispatch:    http.StatusBadGateway,
	ErrorTypeRateLimited:     http.StatusTooManyRequests,
	ErrorTypeInternal:        http.StatusInternalServerError,
}

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, message string, details []string) *AppError {
	return &AppError{
		Type:    t,
		Message: message,
		Code:    statusByType[t],
		Details: strings.Join(details, "; "),
	}
}

// NewValidationError reports malformed input.
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, message, details)
}

func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, message, details)
}

func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, message, details)
}

func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, message, details)
}

// NewForbiddenError reports a permission denial. No mutation may have happened.
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, message, details)
}

// NewExpiredError reports a credential past its validity window. Callers
// should ask for a fresh one rather than retry the same value.
func NewExpiredError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeExpired, message, details)
}

func NewInvalidAssigneeError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidAssignee, message, details)
}

// NewMailDispatchError reports that outbound mail failed after the related
// records were committed.
func NewMailDispatchError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeMailDispatch, message, details)
}

func NewRateLimitedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeRateLimited, message, details)
}

func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, message, details)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err is an AppError of type t.
func IsType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsNotFoundError(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

func IsConflictError(err error) bool {
	return IsType(err, ErrorTypeConflict)
}

func IsForbiddenError(err error) bool {
	return IsType(err, ErrorTypeForbidden)
}

func IsExpiredError(err error) bool {
	return IsType(err, ErrorTypeExpired)
}

func IsInvalidAssigneeError(err error) bool {
	return IsType(err, ErrorTypeInvalidAssignee)
}

func IsMailDispatchError(err error) bool {
	return IsType(err, ErrorTypeMailDispatch)
}

// IsDuplicateError checks if the error is a database duplicate key error.
// MySQL is matched by error number; SQLite only exposes the message.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Duplicate entry") ||
		strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "duplicated key")
}
