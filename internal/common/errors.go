package common

import (
	"errors"
	"fmt"

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

// Pipeline error taxonomy. Everything else the extraction passes miss is a
// soft miss, not an error: the field stays unset and confidence drops.
var (
	// ErrUnsupportedContentType means the declared content type is neither PDF
	// nor a recognized image type. Caller error, not retried.
	ErrUnsupportedContentType = errors.New("unsupported content type")
	// ErrUnreadableDocument means the document needs optical recognition but
	// none is configured and no usable text layer exists.
	ErrUnreadableDocument = errors.New("unreadable document")
	// ErrOCRUnavailable means an image arrived but no OCR backend is configured.
	ErrOCRUnavailable = errors.New("ocr unavailable")
)

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
	ErrValidation   = errors.New("validation failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// GRPCStatus maps pipeline errors onto gRPC codes for the service layer.
func GRPCStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnsupportedContentType):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrUnreadableDocument), errors.Is(err, ErrOCRUnavailable):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
