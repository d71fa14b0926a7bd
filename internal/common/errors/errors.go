// Package errors maps worker failures onto BPMN errors and job retries.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ==========================
// 1. Error Codes
// ==========================

// ErrorCode is the code thrown to the process engine.
type ErrorCode string

const (
	ErrCodeParse           ErrorCode = "PARSE_ERROR"
	ErrCodeInputValidation ErrorCode = "INPUT_VALIDATION_FAILED"

	ErrCodeProfileNotFound     ErrorCode = "PROFILE_NOT_FOUND"
	ErrCodeProfileLookupFailed ErrorCode = "PROFILE_LOOKUP_FAILED"
	ErrCodeProfileCorrupt      ErrorCode = "PROFILE_CORRUPT"
	ErrCodeIdeaNotFound        ErrorCode = "IDEA_NOT_FOUND"

	ErrCodeDatabaseWriteFailed ErrorCode = "DATABASE_WRITE_FAILED"
	ErrCodeSearchIndexFailed   ErrorCode = "SEARCH_INDEX_FAILED"
	ErrCodeSearchQueryFailed   ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeEventPublishFailed  ErrorCode = "EVENT_PUBLISH_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

const (
	CategoryValidation     = "VALIDATION"
	CategoryNotFound       = "NOT_FOUND"
	CategoryInfrastructure = "INFRASTRUCTURE"
	CategoryIntegration    = "INTEGRATION"
	CategoryOther          = "OTHER"
)

type codeInfo struct {
	message  string
	retries  int
	category string
}

var codes = map[ErrorCode]codeInfo{
	ErrCodeParse:               {"Job variables could not be parsed", 0, CategoryValidation},
	ErrCodeInputValidation:     {"Job variables failed validation", 0, CategoryValidation},
	ErrCodeProfileNotFound:     {"Founder profile not found", 0, CategoryNotFound},
	ErrCodeProfileLookupFailed: {"Founder profile lookup failed", 3, CategoryInfrastructure},
	ErrCodeProfileCorrupt:      {"Stored founder profile is unreadable", 0, CategoryValidation},
	ErrCodeIdeaNotFound:        {"Idea not found in catalog", 0, CategoryNotFound},
	ErrCodeDatabaseWriteFailed: {"Database write failed", 3, CategoryInfrastructure},
	ErrCodeSearchIndexFailed:   {"Search indexing failed", 3, CategoryInfrastructure},
	ErrCodeSearchQueryFailed:   {"Search query failed", 3, CategoryInfrastructure},
	ErrCodeEventPublishFailed:  {"Event publish failed", 3, CategoryIntegration},
	ErrCodeInternal:            {"Unexpected error", 0, CategoryOther},
}

// ==========================
// 2. Standard Error Types
// ==========================

// StandardError is a classified worker failure.
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

// BPMNError is what gets thrown to, or failed back to, the engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns the process variables set alongside the error.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Constructors
// ==========================

// New builds a StandardError for code. Unknown codes are not retryable.
func New(code ErrorCode, details string) *StandardError {
	info, ok := codes[code]
	if !ok {
		info = codeInfo{message: string(code), category: CategoryOther}
	}
	return &StandardError{
		Code:      code,
		Message:   info.message,
		Details:   details,
		Retryable: info.retries > 0,
		Timestamp: time.Now().UTC(),
	}
}

// FromError classifies err. Workers wrap sentinels created with
// errors.New("<CODE>"), so the first error in the chain whose text is a known
// code decides the classification.
func FromError(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if _, ok := codes[ErrorCode(e.Error())]; ok {
			return New(ErrorCode(e.Error()), err.Error())
		}
	}
	return New(ErrCodeInternal, err.Error())
}

// ==========================
// 4. Conversion to BPMN
// ==========================

// GetRetryCount returns how many times a failure with code is retried.
func GetRetryCount(code ErrorCode) int {
	return codes[code].retries
}

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

func GetErrorCategory(code ErrorCode) string {
	if info, ok := codes[code]; ok {
		return info.category
	}
	return CategoryOther
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}
	return &BPMNError{
		Code:      string(stdErr.Code),
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"errorCategory": GetErrorCategory(stdErr.Code),
			"timestamp":     stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}
