// Package errors provides standardized error codes for the query pipeline.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeEmptyQuery        ErrorCode = "EMPTY_QUERY"
	ErrCodeUnclassifiedQuery ErrorCode = "UNCLASSIFIED_QUERY"

	ErrCodeHealthInfoFailed ErrorCode = "HEALTH_INFO_FAILED"
	ErrCodeLLMTimeout       ErrorCode = "LLM_TIMEOUT"
	ErrCodeCacheReadFailed  ErrorCode = "CACHE_READ_FAILED"
	ErrCodeCacheWriteFailed ErrorCode = "CACHE_WRITE_FAILED"

	ErrCodeHospitalLookupFailed ErrorCode = "HOSPITAL_LOOKUP_FAILED"
	ErrCodeHospitalNotFound     ErrorCode = "HOSPITAL_NOT_FOUND"
	ErrCodeDatabaseQueryFailed  ErrorCode = "DATABASE_QUERY_FAILED"
	ErrCodeDatabaseTimeout      ErrorCode = "DATABASE_TIMEOUT"

	ErrCodeCostEstimateFailed   ErrorCode = "COST_ESTIMATE_FAILED"
	ErrCodeCostDiseaseNotFound  ErrorCode = "COST_DISEASE_NOT_FOUND"
	ErrCodeInvalidRequestFormat ErrorCode = "INVALID_REQUEST_FORMAT"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewEmptyQueryError marks a request rejected before extraction.
func NewEmptyQueryError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyQuery,
		Message:   "Query text is empty after trimming",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnclassifiedQueryError marks a query no intent predicate matched.
func NewUnclassifiedQueryError(query string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnclassifiedQuery,
		Message:   "No intent matched the query",
		Details:   query,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewHealthInfoFailedError creates a retryable LLM collaborator error.
func NewHealthInfoFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeHealthInfoFailed,
		Message:   "Health information generation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMTimeoutError creates a retryable LLM timeout error.
func NewLLMTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMTimeout,
		Message:   "LLM call exceeded its timeout",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewHospitalLookupFailedError creates a retryable hospital store error.
func NewHospitalLookupFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeHospitalLookupFailed,
		Message:   "Hospital directory query failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewHospitalNotFoundError marks an empty lookup result (not retryable).
func NewHospitalNotFoundError(criteria string) *StandardError {
	return &StandardError{
		Code:      ErrCodeHospitalNotFound,
		Message:   "No hospitals matched the given criteria",
		Details:   criteria,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCostDiseaseNotFoundError marks a disease missing from the medicine tables.
func NewCostDiseaseNotFoundError(disease string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCostDiseaseNotFound,
		Message:   "Disease not present in medicine cost tables",
		Details:   disease,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCostEstimateFailedError creates a non-retryable estimation error.
func NewCostEstimateFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCostEstimateFailed,
		Message:   "Healthcare cost estimation failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestFormatError marks a request body failing schema validation.
func NewInvalidRequestFormatError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequestFormat,
		Message:   "Request body failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeHealthInfoFailed, ErrCodeHospitalLookupFailed, ErrCodeDatabaseQueryFailed:
		return 3
	case ErrCodeLLMTimeout, ErrCodeDatabaseTimeout:
		return 1
	default:
		return 0 // business outcomes: no retry
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "QUERY") && !strings.Contains(codeStr, "DATABASE"):
		return "INPUT"
	case strings.Contains(codeStr, "LLM") || strings.Contains(codeStr, "HEALTH") || strings.Contains(codeStr, "CACHE"):
		return "AI"
	case strings.Contains(codeStr, "HOSPITAL") || strings.Contains(codeStr, "DATABASE"):
		return "DIRECTORY"
	case strings.Contains(codeStr, "COST"):
		return "COST"
	case strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
