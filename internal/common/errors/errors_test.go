package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRetryCount(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeSessionStoreFailed, 3},
		{ErrCodeCatalogUnavailable, 3},
		{ErrCodeCatalogQueryFailed, 3},
		{ErrCodeSearchQueryFailed, 3},
		{ErrCodeCardRenderTimeout, 2},
		{ErrCodeCardRenderFailed, 1},
		{ErrCodeInputValidationFailed, 0},
		{ErrCodeShareFailed, 0},
		{"SOMETHING_ELSE", 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, GetRetryCount(tt.code))
			assert.Equal(t, tt.want > 0, IsRetryableErrorCode(tt.code))
		})
	}
}

func TestConvertToBPMNError(t *testing.T) {
	stdErr := NewCatalogUnavailableError("postgres", fmt.Errorf("dial tcp: refused")).
		WithMetadata("source", "postgres")

	bpmn := ConvertToBPMNError(stdErr)
	assert.Equal(t, "CATALOG_UNAVAILABLE", bpmn.Code)
	assert.True(t, bpmn.Retryable)
	assert.Equal(t, 3, bpmn.Retries)
	assert.Equal(t, "postgres", bpmn.ErrorVariables["source"])
	assert.Equal(t, "CATALOG_UNAVAILABLE", bpmn.ErrorVariables["originalErrorCode"])

	vars := bpmn.ToErrorVariables()
	assert.Equal(t, "CATALOG_UNAVAILABLE", vars["errorCode"])
	assert.Equal(t, true, vars["retryable"])
}

func TestConvertToBPMNError_NonRetryableHasNoRetries(t *testing.T) {
	bpmn := ConvertToBPMNError(NewShareFailedError("email", fmt.Errorf("throttled")))
	assert.Equal(t, "SHARE_FAILED", bpmn.Code)
	assert.Equal(t, 0, bpmn.Retries)
}

func TestConvertToBPMNError_UnmappedCodePassesThrough(t *testing.T) {
	bpmn := ConvertToBPMNError(NewBusinessRuleError("nope", "details"))
	assert.Equal(t, "BUSINESS_RULE_VIOLATION", bpmn.Code)
}

func TestNormalize(t *testing.T) {
	wrapped := fmt.Errorf("loading session: %w", NewSessionNotFoundError("abc"))
	stdErr := Normalize(wrapped)
	assert.Equal(t, ErrCodeSessionNotFound, stdErr.Code)

	plain := Normalize(stderrors.New("kaboom"))
	assert.Equal(t, ErrCodeInternal, plain.Code)
	assert.Equal(t, "kaboom", plain.Details)
	assert.False(t, plain.Retryable)
}

func TestAsStandardError(t *testing.T) {
	_, ok := AsStandardError(stderrors.New("plain"))
	assert.False(t, ok)

	got, ok := AsStandardError(NewItemNotFoundError("sponsor", "42"))
	require.True(t, ok)
	assert.Equal(t, "id: 42", got.Details)
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "SESSION", GetErrorCategory(ErrCodeSessionStoreFailed))
	assert.Equal(t, "CATALOG", GetErrorCategory(ErrCodeCatalogQueryFailed))
	assert.Equal(t, "SEARCH", GetErrorCategory(ErrCodeSearchQueryFailed))
	assert.Equal(t, "SAVE_THE_DATE", GetErrorCategory(ErrCodeCardRenderFailed))
	assert.Equal(t, "SAVE_THE_DATE", GetErrorCategory(ErrCodeShareFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInputValidationFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeItemNotFound))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

func TestStandardError_Error(t *testing.T) {
	err := NewInvalidQuizActionError("unknown action")
	assert.Equal(t, "StandardError[INVALID_QUIZ_ACTION]: Quiz action not allowed", err.Error())
	assert.False(t, err.Timestamp.IsZero())
}
