package domain

import (
	"fmt"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Err:        err,
	}
}

// Is matches two AppErrors by code, so copies produced by WithError still
// compare equal to their sentinel under errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Pre-defined errors
var (
	ErrInternal = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}

	ErrBadRequest = &AppError{
		Code:       "BAD_REQUEST",
		Message:    "Invalid request",
		StatusCode: 400,
	}

	ErrNotFound = &AppError{
		Code:       "NOT_FOUND",
		Message:    "Resource not found",
		StatusCode: 404,
	}

	ErrCapacityReached = &AppError{
		Code:       "CAPACITY_REACHED",
		Message:    "Enrollment capacity reached, no new identities accepted",
		StatusCode: 403,
	}

	ErrExtractionFailed = &AppError{
		Code:       "EXTRACTION_FAILED",
		Message:    "No usable face found in the submitted image",
		StatusCode: 400,
	}

	ErrNoEnrolledIdentities = &AppError{
		Code:       "NO_ENROLLED_IDENTITIES",
		Message:    "No identities enrolled yet",
		StatusCode: 404,
	}

	ErrBelowThreshold = &AppError{
		Code:       "BELOW_THRESHOLD",
		Message:    "Best match similarity below recognition threshold",
		StatusCode: 401,
	}

	ErrPersistence = &AppError{
		Code:       "PERSISTENCE_FAILURE",
		Message:    "Identity store operation failed",
		StatusCode: 500,
	}

	ErrExtractorUnavailable = &AppError{
		Code:       "EXTRACTOR_UNAVAILABLE",
		Message:    "Face embedding extractor is not available",
		StatusCode: 503,
	}

	ErrGeneratorUnavailable = &AppError{
		Code:       "GENERATOR_UNAVAILABLE",
		Message:    "Text generation backend is not available",
		StatusCode: 503,
	}

	ErrInvalidImage = &AppError{
		Code:       "INVALID_IMAGE",
		Message:    "Invalid image format or corrupted file",
		StatusCode: 422,
	}

	ErrValidationFailed = &AppError{
		Code:       "VALIDATION_FAILED",
		Message:    "Request validation failed",
		StatusCode: 422,
	}

	ErrUnsupportedLanguage = &AppError{
		Code:       "UNSUPPORTED_LANGUAGE",
		Message:    "Programming language is not supported",
		StatusCode: 422,
	}

	ErrRateLimitExceeded = &AppError{
		Code:       "RATE_LIMIT_EXCEEDED",
		Message:    "Rate limit exceeded, please try again later",
		StatusCode: 429,
	}
)
