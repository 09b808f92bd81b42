// Package errors provides custom error types for the FinanceBook API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Taxonomy errors.
var (
	ErrCategoryTypeNotFound = &AppError{Code: "CATEGORY_TYPE_NOT_FOUND", Message: "Category type not found", StatusCode: http.StatusNotFound}
	ErrCategoryNotFound     = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrSelfParentCategory   = &AppError{Code: "SELF_PARENT_CATEGORY", Message: "A category cannot be its own parent", StatusCode: http.StatusBadRequest}
	ErrCategoryCycle        = &AppError{Code: "CATEGORY_CYCLE", Message: "Parent assignment would create a cycle", StatusCode: http.StatusBadRequest}
)

// Classification errors.
var (
	ErrOneCategoryPerType = &AppError{Code: "ONE_CATEGORY_PER_TYPE", Message: "Only one category per type is allowed", StatusCode: http.StatusBadRequest}
)

// Payment item errors.
var (
	ErrPaymentItemNotFound = &AppError{Code: "PAYMENT_ITEM_NOT_FOUND", Message: "Payment item not found", StatusCode: http.StatusNotFound}
	ErrConflictingFilter   = &AppError{Code: "CONFLICTING_FILTER", Message: "Choose only one filter: expense_only or income_only", StatusCode: http.StatusBadRequest}
)

// Recipient errors.
var (
	ErrRecipientNotFound = &AppError{Code: "RECIPIENT_NOT_FOUND", Message: "Recipient not found", StatusCode: http.StatusNotFound}
)

// File storage errors.
var (
	ErrFileNotFound    = &AppError{Code: "FILE_NOT_FOUND", Message: "File not found", StatusCode: http.StatusNotFound}
	ErrInvalidFilename = &AppError{Code: "INVALID_FILENAME", Message: "Invalid filename", StatusCode: http.StatusBadRequest}
)
