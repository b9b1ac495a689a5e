// Package errors provides structured error types for the benchplot tool.
// All errors include a category, code, message, and fatal flag for
// consistent error handling across the report pipeline.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors by pipeline stage.
type ErrorCategory string

const (
	ErrCategoryLoad      ErrorCategory = "LOAD"
	ErrCategoryAggregate ErrorCategory = "AGGREGATE"
	ErrCategoryRender    ErrorCategory = "RENDER"
	ErrCategoryManifest  ErrorCategory = "MANIFEST"
	ErrCategoryStorage   ErrorCategory = "STORAGE"
	ErrCategoryInternal  ErrorCategory = "INTERNAL"
)

// Error codes for each category.
const (
	// Load codes
	CodeFileNotFound  = "FILE_NOT_FOUND"
	CodeMalformedCSV  = "MALFORMED_CSV"
	CodeMissingColumn = "MISSING_COLUMN"
	CodeBadNumeric    = "BAD_NUMERIC"

	// Aggregate codes
	CodeEmptyResult = "EMPTY_RESULT"
	CodeBadRequest  = "BAD_REQUEST"

	// Render codes
	CodeEncodeFailed = "ENCODE_FAILED"
	CodeWriteFailed  = "WRITE_FAILED"

	// Manifest codes
	CodeManifestIO = "MANIFEST_IO"

	// Storage codes
	CodeUploadFailed = "UPLOAD_FAILED"

	// Internal codes
	CodeUnexpected = "UNEXPECTED"
)

// ReportError is the structured error type used throughout the tool.
type ReportError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Cause    error
	// Fatal errors abort the run; non-fatal errors skip the current
	// view and let the remaining views proceed.
	Fatal bool
}

// Error returns a formatted error string.
func (e *ReportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *ReportError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches this error's category and code.
func (e *ReportError) Is(target error) bool {
	var t *ReportError
	if errors.As(target, &t) {
		return e.Category == t.Category && e.Code == t.Code
	}
	return false
}

// New creates a new ReportError.
func New(category ErrorCategory, code, message string) *ReportError {
	return &ReportError{
		Category: category,
		Code:     code,
		Message:  message,
		Fatal:    isFatal(category),
	}
}

// Wrap creates a new ReportError wrapping an existing error.
func Wrap(category ErrorCategory, code, message string, cause error) *ReportError {
	return &ReportError{
		Category: category,
		Code:     code,
		Message:  message,
		Cause:    cause,
		Fatal:    isFatal(category),
	}
}

// IsFatal checks whether an error (or its chain) must abort the run.
func IsFatal(err error) bool {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Fatal
	}
	return false
}

// GetCategory extracts the error category from an error chain.
// Returns empty string if the error is not a ReportError.
func GetCategory(err error) ErrorCategory {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Category
	}
	return ""
}

// GetCode extracts the error code from an error chain.
func GetCode(err error) string {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}

// isFatal maps categories to abort semantics: a dataset that cannot be
// loaded stops the run before any chart work; everything downstream is
// per-view recoverable.
func isFatal(category ErrorCategory) bool {
	return category == ErrCategoryLoad
}

// Convenience constructors for common errors.

func NewLoadError(code, message string, cause error) *ReportError {
	return Wrap(ErrCategoryLoad, code, message, cause)
}

func NewAggregateError(code, message string) *ReportError {
	return New(ErrCategoryAggregate, code, message)
}

func NewRenderError(code, message string, cause error) *ReportError {
	return Wrap(ErrCategoryRender, code, message, cause)
}

func NewManifestError(code, message string, cause error) *ReportError {
	return Wrap(ErrCategoryManifest, code, message, cause)
}

func NewStorageError(code, message string, cause error) *ReportError {
	return Wrap(ErrCategoryStorage, code, message, cause)
}

func NewInternalError(message string, cause error) *ReportError {
	return Wrap(ErrCategoryInternal, CodeUnexpected, message, cause)
}
