package common

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Upload failure taxonomy. Validation errors are raised before any external
// call; capability errors abort the upload with no document created;
// persistence errors surface as not-found to the caller.
var (
	// Validation
	ErrImageTooSmall     = errors.New("image too small")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrEmptyDocument     = errors.New("empty document")

	// Capability
	ErrClassificationUnavailable = errors.New("classification unavailable")
	ErrClassificationUnknown     = errors.New("classification unknown")
	ErrExtractionUnavailable     = errors.New("extraction unavailable")
	ErrExtractionMalformed       = errors.New("extraction malformed")

	// Persistence
	ErrDocumentNotFound = errors.New("document not found")
	ErrFieldNotFound    = errors.New("field not found")

	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// NewAppError builds a coded error wrapping cause.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsValidation reports whether err is a pre-recognition validation rejection.
func IsValidation(err error) bool {
	return errors.Is(err, ErrImageTooSmall) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrEmptyDocument)
}

// IsCapability reports whether err comes from the recognition capability.
func IsCapability(err error) bool {
	return errors.Is(err, ErrClassificationUnavailable) ||
		errors.Is(err, ErrClassificationUnknown) ||
		errors.Is(err, ErrExtractionUnavailable) ||
		errors.Is(err, ErrExtractionMalformed)
}

// IsNotFound reports whether err is a persistence not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDocumentNotFound) || errors.Is(err, ErrFieldNotFound)
}

// ToGRPCStatus maps a pipeline or store error onto a gRPC status error.
func ToGRPCStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case IsValidation(err), errors.Is(err, ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrClassificationUnavailable), errors.Is(err, ErrExtractionUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, ErrClassificationUnknown), errors.Is(err, ErrExtractionMalformed):
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

// ToHTTPStatus maps a pipeline or store error onto an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, ErrClassificationUnavailable), errors.Is(err, ErrExtractionUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, ErrClassificationUnknown), errors.Is(err, ErrExtractionMalformed):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}
