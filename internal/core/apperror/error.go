// Package apperror provides structured error handling for the API.
// All business errors use AppError so handlers produce consistent responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced to API clients.
const (
	// Infrastructure errors (5xx)
	CodeInternal = "INTERNAL_ERROR"
	CodeDatabase = "DATABASE_ERROR"

	// Validation errors (400)
	CodeValidation = "VALIDATION_ERROR"

	// Business rule violations (422)
	CodeInvalidQuantity    = "INVALID_QUANTITY"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodeRequirementsNotMet = "REQUIREMENTS_NOT_MET"
	CodeInvalidDiscount    = "INVALID_DISCOUNT"
	CodeAlreadyDelivered   = "ORDER_ALREADY_DELIVERED"

	// Authorization errors (401, 403)
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"

	// Conflict (409)
	CodeConflict               = "CONFLICT"
	CodeDuplicate              = "DUPLICATE_ENTRY"
	CodeConcurrentModification = "CONCURRENT_MODIFICATION"
)

// AppError is the standard error type for the service.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field errors, quantities, etc.)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewValidation creates a validation error (400).
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFound creates a not found error (404).
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewInvalidQuantity creates an error for a non-positive quantity (422).
func NewInvalidQuantity(quantity any) *AppError {
	return &AppError{
		Code:       CodeInvalidQuantity,
		Message:    "quantity must be greater than zero",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"quantity": quantity},
	}
}

// NewInsufficientStock creates a stock shortage error for an order (422).
func NewInsufficientStock(offeredProductID, requested, available any) *AppError {
	return &AppError{
		Code:       CodeInsufficientStock,
		Message:    "requested quantity exceeds available stock",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details: map[string]any{
			"offered_product_id": offeredProductID,
			"requested":          requested,
			"available":          available,
		},
	}
}

// NewRequirementsNotMet creates a raw-material shortfall error for production (422).
func NewRequirementsNotMet(productID any) *AppError {
	return &AppError{
		Code:       CodeRequirementsNotMet,
		Message:    "formula requirements not met: insufficient raw material",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"product_id": productID},
	}
}

// NewInvalidDiscount creates an error for a discount exceeding the pre-discount total (422).
func NewInvalidDiscount(total, discount any) *AppError {
	return &AppError{
		Code:       CodeInvalidDiscount,
		Message:    "discount cannot exceed the order total",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"total": total, "discount": discount},
	}
}

// NewAlreadyDelivered creates an error for re-delivering a delivered order (422).
func NewAlreadyDelivered(orderID any) *AppError {
	return &AppError{
		Code:       CodeAlreadyDelivered,
		Message:    "order has already been delivered",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"order_id": orderID},
	}
}

// NewConflict creates a generic conflict error (409).
func NewConflict(message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewDuplicate creates a duplicate entry error (409).
func NewDuplicate(entity, field string) *AppError {
	return &AppError{
		Code:       CodeDuplicate,
		Message:    fmt.Sprintf("%s with this %s already exists", entity, field),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"entity": entity, "field": field},
	}
}

// NewConcurrentModification creates an optimistic-lock conflict error (409).
func NewConcurrentModification(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeConcurrentModification,
		Message:    "entity was modified by another request",
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewUnauthorized creates an authentication error (401).
func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewForbidden creates an authorization error (403).
func NewForbidden(message string) *AppError {
	return &AppError{
		Code:       CodeForbidden,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

// NewInternal creates an internal error (500).
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewDatabase creates a database error (500).
func NewDatabase(err error) *AppError {
	return &AppError{
		Code:       CodeDatabase,
		Message:    "database operation failed",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Inspection helpers ---

// AsAppError extracts an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsAppError reports whether err carries an AppError.
func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsDuplicate reports whether err is a duplicate-entry error.
func IsDuplicate(err error) bool {
	return hasCode(err, CodeDuplicate)
}

// IsInsufficientStock reports whether err is a stock shortage error.
func IsInsufficientStock(err error) bool {
	return hasCode(err, CodeInsufficientStock)
}

// IsRequirementsNotMet reports whether err is a raw-material shortfall error.
func IsRequirementsNotMet(err error) bool {
	return hasCode(err, CodeRequirementsNotMet)
}

func hasCode(err error, code string) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
