package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	errIdeaNotFound := stderrors.New("IDEA_NOT_FOUND")
	errDBWrite := stderrors.New("DATABASE_WRITE_FAILED")

	tests := []struct {
		name      string
		err       error
		code      ErrorCode
		retryable bool
	}{
		{
			name: "wrapped sentinel",
			err:  fmt.Errorf("%w: ideaId=ghost", errIdeaNotFound),
			code: ErrCodeIdeaNotFound,
		},
		{
			name:      "double wrapped retryable sentinel",
			err:       fmt.Errorf("save idea: %w", fmt.Errorf("%w: connection reset", errDBWrite)),
			code:      ErrCodeDatabaseWriteFailed,
			retryable: true,
		},
		{
			name:      "standard error passes through",
			err:       fmt.Errorf("publish: %w", New(ErrCodeEventPublishFailed, "throttled")),
			code:      ErrCodeEventPublishFailed,
			retryable: true,
		},
		{
			name: "unknown error",
			err:  stderrors.New("something odd"),
			code: ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdErr := FromError(tt.err)
			assert.Equal(t, tt.code, stdErr.Code)
			assert.Equal(t, tt.retryable, stdErr.Retryable)
			assert.NotEmpty(t, stdErr.Message)
		})
	}
}

func TestRetryAndCategoryTables(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		retries  int
		category string
	}{
		{ErrCodeParse, 0, CategoryValidation},
		{ErrCodeInputValidation, 0, CategoryValidation},
		{ErrCodeProfileNotFound, 0, CategoryNotFound},
		{ErrCodeIdeaNotFound, 0, CategoryNotFound},
		{ErrCodeProfileLookupFailed, 3, CategoryInfrastructure},
		{ErrCodeDatabaseWriteFailed, 3, CategoryInfrastructure},
		{ErrCodeSearchIndexFailed, 3, CategoryInfrastructure},
		{ErrCodeSearchQueryFailed, 3, CategoryInfrastructure},
		{ErrCodeEventPublishFailed, 3, CategoryIntegration},
		{ErrorCode("NOT_A_CODE"), 0, CategoryOther},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.retries, GetRetryCount(tt.code))
			assert.Equal(t, tt.retries > 0, IsRetryableErrorCode(tt.code))
			assert.Equal(t, tt.category, GetErrorCategory(tt.code))
		})
	}
}

func TestConvertToBPMNError(t *testing.T) {
	bpmnErr := ConvertToBPMNError(New(ErrCodeSearchIndexFailed, "es unavailable"))

	assert.Equal(t, "SEARCH_INDEX_FAILED", bpmnErr.Code)
	assert.True(t, bpmnErr.Retryable)
	assert.Equal(t, 3, bpmnErr.Retries)

	vars := bpmnErr.ToErrorVariables()
	assert.Equal(t, "SEARCH_INDEX_FAILED", vars["errorCode"])
	assert.Equal(t, "es unavailable", vars["errorDetails"])
	assert.Equal(t, CategoryInfrastructure, vars["errorCategory"])
	require.Contains(t, vars, "timestamp")
}

func TestRetriesLeft(t *testing.T) {
	retryable := ConvertToBPMNError(New(ErrCodeDatabaseWriteFailed, ""))
	terminal := ConvertToBPMNError(New(ErrCodeIdeaNotFound, ""))

	tests := []struct {
		name       string
		bpmnErr    *BPMNError
		jobRetries int32
		retries    int32
		retry      bool
	}{
		{"fresh job", retryable, 3, 2, true},
		{"capped by table", retryable, 10, 3, true},
		{"last attempt throws", retryable, 1, 0, false},
		{"business error never retries", terminal, 3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retries, retry := retriesLeft(tt.bpmnErr, tt.jobRetries)
			assert.Equal(t, tt.retries, retries)
			assert.Equal(t, tt.retry, retry)
		})
	}
}
