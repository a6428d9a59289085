// Package errors defines the application error taxonomy. Every business
// failure surfaces as an AppError so the delivery layer can translate it
// without inspecting error strings.
package errors

import (
	"fmt"
	"net/http"
	"strings"

	"shop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Not-found errors, one per aggregate
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"payment not found",
		"",
	)

	ErrShipmentNotFound = NewBaseError(
		http.StatusNotFound,
		"SHIPMENT_NOT_FOUND",
		"shipment not found",
		"",
	)

	// Product lifecycle errors
	ErrProductInUse = NewBaseError(
		http.StatusConflict,
		"PRODUCT_IN_USE",
		"product is referenced by existing orders and cannot be deleted",
		"",
	)

	ErrProductUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"PRODUCT_UNAVAILABLE",
		"product is missing or inactive",
		"",
	)

	ErrDuplicateSku = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_SKU",
		"a product with this SKU already exists",
		"",
	)

	// Status machine errors
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"status transition is not permitted",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Invariant violations are programming or data-integrity errors,
	// never corrected silently.
	ErrInvariantViolation = NewBaseError(
		http.StatusInternalServerError,
		"INVARIANT_VIOLATION",
		"domain invariant violated",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// InsufficientStockError reports an order line that asked for more units
// than the product has available. It carries the figures so callers can
// render them without parsing the message.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

// NewInsufficientStockError creates a stock shortage error for one product.
func NewInsufficientStockError(productID string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// HTTPCode returns the HTTP status code
func (e *InsufficientStockError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *InsufficientStockError) ErrorCode() string {
	return "INSUFFICIENT_STOCK"
}

// Message returns the user-friendly error message
func (e *InsufficientStockError) Message() string {
	return "insufficient stock"
}

// Details returns detailed error information
func (e *InsufficientStockError) Details() string {
	return e.Error()
}

// ValidationError aggregates every structural rule violated by a command.
// It is reported as a whole, never partially.
type ValidationError struct {
	Violations []string
}

// NewValidationError creates an aggregated validation error.
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "input validation failed"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return strings.Join(e.Violations, "; ")
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
