package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardError_Error(t *testing.T) {
	err := NewEmptyQueryError()
	assert.Equal(t, "StandardError[EMPTY_QUERY]: Query text is empty after trimming", err.Error())
	assert.False(t, err.Retryable)
	assert.False(t, err.Timestamp.IsZero())
}

func TestGetRetryCount(t *testing.T) {
	assert.Equal(t, 3, GetRetryCount(ErrCodeHealthInfoFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeHospitalLookupFailed))
	assert.Equal(t, 1, GetRetryCount(ErrCodeLLMTimeout))
	assert.Equal(t, 0, GetRetryCount(ErrCodeHospitalNotFound))
	assert.Equal(t, 0, GetRetryCount(ErrCodeEmptyQuery))
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeHealthInfoFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeCostDiseaseNotFound))
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "INPUT", GetErrorCategory(ErrCodeEmptyQuery))
	assert.Equal(t, "AI", GetErrorCategory(ErrCodeLLMTimeout))
	assert.Equal(t, "DIRECTORY", GetErrorCategory(ErrCodeHospitalLookupFailed))
	assert.Equal(t, "COST", GetErrorCategory(ErrCodeCostEstimateFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInvalidRequestFormat))
}

func TestConstructorsCarryDetails(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewHospitalLookupFailedError(cause)
	assert.Equal(t, ErrCodeHospitalLookupFailed, err.Code)
	assert.Equal(t, "connection refused", err.Details)
	assert.True(t, err.Retryable)

	nf := NewHospitalNotFoundError("city=Delhi")
	assert.Equal(t, "city=Delhi", nf.Details)
	assert.False(t, nf.Retryable)
}
