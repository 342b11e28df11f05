// Package errors defines the application error taxonomy exposed to callers.
package errors

import (
	"net/http"

	"glovia/internal/errors"
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

// Is matches errors carrying the same business error code, so copies
// produced by WithDetails still compare equal to their sentinel.
func (e *BaseError) Is(target error) bool {
	var appErr AppError
	if !errors.As(target, &appErr) {
		return false
	}

	return e.errorCode == appErr.ErrorCode()
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

// Predefined error types. User-facing messages are in Bahasa Indonesia.
var (
	// Validation and lookup errors
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Data yang dikirim tidak valid",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Produk tidak ditemukan",
		"",
	)

	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Pelanggan tidak ditemukan",
		"",
	)

	ErrQuotationNotFound = NewBaseError(
		http.StatusNotFound,
		"QUOTATION_NOT_FOUND",
		"Penawaran tidak ditemukan",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Pesanan tidak ditemukan",
		"",
	)

	ErrInvoiceNotFound = NewBaseError(
		http.StatusNotFound,
		"INVOICE_NOT_FOUND",
		"Faktur tidak ditemukan",
		"",
	)

	ErrFollowUpNotFound = NewBaseError(
		http.StatusNotFound,
		"FOLLOW_UP_NOT_FOUND",
		"Tindak lanjut tidak ditemukan",
		"",
	)

	// State machine errors
	ErrInvalidTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRANSITION",
		"Perubahan status tidak diizinkan",
		"",
	)

	ErrPreconditionFailed = NewBaseError(
		http.StatusBadRequest,
		"PRECONDITION_FAILED",
		"Persyaratan proses belum terpenuhi",
		"",
	)

	// Idempotency violations
	ErrAlreadyConverted = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_CONVERTED",
		"Penawaran sudah dikonversi menjadi pesanan",
		"",
	)

	ErrAlreadyInvoiced = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_INVOICED",
		"Pesanan sudah memiliki faktur",
		"",
	)

	ErrAlreadyPaid = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_PAID",
		"Faktur sudah dibayar",
		"",
	)

	ErrInvoiceCancelled = NewBaseError(
		http.StatusBadRequest,
		"INVOICE_CANCELLED",
		"Faktur sudah dibatalkan",
		"",
	)

	ErrAlreadyResolved = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_RESOLVED",
		"Tindak lanjut sudah diselesaikan",
		"",
	)

	// Tax invoice errors
	ErrTaxInvoiceNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"TAX_INVOICE_NOT_ALLOWED",
		"Faktur pajak hanya untuk pelanggan B2B dengan NPWP terdaftar",
		"",
	)

	ErrTaxInvoiceExists = NewBaseError(
		http.StatusBadRequest,
		"TAX_INVOICE_EXISTS",
		"Faktur pajak sudah diterbitkan",
		"",
	)

	// Access errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Autentikasi diperlukan",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Akses ditolak",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Sumber daya tidak ditemukan",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Terjadi kesalahan pada sistem",
		"",
	)
)

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
	return "Eksekusi basis data gagal"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
