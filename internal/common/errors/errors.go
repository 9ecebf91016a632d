// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInputValidationFailed ErrorCode = "INPUT_VALIDATION_FAILED"
	ErrCodeInvalidFilterFormat   ErrorCode = "INVALID_FILTER_FORMAT"
	ErrCodeInvalidQuizAction     ErrorCode = "INVALID_QUIZ_ACTION"
	ErrCodeItemNotFound          ErrorCode = "ITEM_NOT_FOUND"

	ErrCodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionStoreFailed ErrorCode = "SESSION_STORE_FAILED"

	ErrCodeCatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"
	ErrCodeCatalogQueryFailed ErrorCode = "CATALOG_QUERY_FAILED"
	ErrCodeSearchQueryFailed  ErrorCode = "SEARCH_QUERY_FAILED"

	ErrCodeCardRenderFailed  ErrorCode = "CARD_RENDER_FAILED"
	ErrCodeCardRenderTimeout ErrorCode = "CARD_RENDER_TIMEOUT"
	ErrCodeShareFailed       ErrorCode = "SHARE_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
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

// WithMetadata attaches a key to the error and returns it for chaining.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
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

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
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
// 3. Error Constructors
// ==========================

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputValidationFailedError reports job variables that do not match the task schema.
func NewInputValidationFailedError(taskType, details string) *StandardError {
	return newError(ErrCodeInputValidationFailed, "Job variables failed schema validation",
		fmt.Sprintf("taskType: %s, %s", taskType, details), false)
}

func NewInvalidFilterFormatError(details string) *StandardError {
	return newError(ErrCodeInvalidFilterFormat, "Invalid filter format", details, false)
}

func NewInvalidQuizActionError(details string) *StandardError {
	return newError(ErrCodeInvalidQuizAction, "Quiz action not allowed", details, false)
}

func NewItemNotFoundError(kind, id string) *StandardError {
	return newError(ErrCodeItemNotFound, fmt.Sprintf("%s not found", kind),
		fmt.Sprintf("id: %s", id), false)
}

func NewSessionNotFoundError(sessionID string) *StandardError {
	return newError(ErrCodeSessionNotFound, "Session not found or expired",
		fmt.Sprintf("sessionId: %s", sessionID), false)
}

// NewSessionStoreFailedError creates a retryable store error.
func NewSessionStoreFailedError(err error) *StandardError {
	return newError(ErrCodeSessionStoreFailed, "Session store operation failed", err.Error(), true)
}

// NewCatalogUnavailableError creates a retryable error for an unreachable vendor source.
func NewCatalogUnavailableError(source string, err error) *StandardError {
	return newError(ErrCodeCatalogUnavailable, "Vendor catalog unavailable",
		fmt.Sprintf("source: %s, error: %s", source, err.Error()), true)
}

func NewCatalogQueryFailedError(err error) *StandardError {
	return newError(ErrCodeCatalogQueryFailed, "Vendor catalog query failed", err.Error(), true)
}

func NewSearchQueryFailedError(index string, err error) *StandardError {
	return newError(ErrCodeSearchQueryFailed, "Elasticsearch query error",
		fmt.Sprintf("index: %s, error: %s", index, err.Error()), true)
}

func NewCardRenderFailedError(err error) *StandardError {
	return newError(ErrCodeCardRenderFailed, "Save-the-date card rendering failed", err.Error(), true)
}

func NewCardRenderTimeoutError(templateID string) *StandardError {
	return newError(ErrCodeCardRenderTimeout, "Save-the-date card rendering timed out",
		fmt.Sprintf("templateId: %s", templateID), true)
}

func NewShareFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeShareFailed, "Share delivery failed",
		fmt.Sprintf("channel: %s, error: %s", channel, err.Error()), false)
}

// Generic constructors

func NewBusinessRuleError(message, details string) *StandardError {
	return newError("BUSINESS_RULE_VIOLATION", message, details, false)
}

func NewExternalServiceError(service string, err error) *StandardError {
	return newError("EXTERNAL_SERVICE_ERROR", fmt.Sprintf("External service '%s' error", service), err.Error(), true)
}

func NewTimeoutError(service string, err error) *StandardError {
	return newError("TIMEOUT_ERROR", fmt.Sprintf("Service '%s' timeout", service), err.Error(), true)
}

func NewResourceNotFoundError(service, details string) *StandardError {
	return newError("RESOURCE_NOT_FOUND", fmt.Sprintf("Resource not found in %s", service), details, false)
}

func NewAuthenticationError(details string) *StandardError {
	return newError("AUTHENTICATION_ERROR", "Authentication failed", details, false)
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes. Codes missing
// here are passed through unchanged.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInputValidationFailed: "INPUT_VALIDATION_FAILED",
	ErrCodeInvalidFilterFormat:   "INVALID_FILTER_FORMAT",
	ErrCodeInvalidQuizAction:     "INVALID_QUIZ_ACTION",
	ErrCodeItemNotFound:          "ITEM_NOT_FOUND",
	ErrCodeSessionNotFound:       "SESSION_NOT_FOUND",
	ErrCodeSessionStoreFailed:    "SESSION_STORE_FAILED",
	ErrCodeCatalogUnavailable:    "CATALOG_UNAVAILABLE",
	ErrCodeCatalogQueryFailed:    "CATALOG_QUERY_FAILED",
	ErrCodeSearchQueryFailed:     "SEARCH_QUERY_FAILED",
	ErrCodeCardRenderFailed:      "CARD_RENDER_FAILED",
	ErrCodeCardRenderTimeout:     "CARD_RENDER_TIMEOUT",
	ErrCodeShareFailed:           "SHARE_FAILED",
}

// GetRetryCount returns the recommended retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeSessionStoreFailed,
		ErrCodeCatalogUnavailable,
		ErrCodeCatalogQueryFailed,
		ErrCodeSearchQueryFailed:
		return 3

	case ErrCodeCardRenderTimeout:
		return 2

	case ErrCodeCardRenderFailed:
		return 1

	default:
		return 0
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// AsStandardError unwraps err looking for a *StandardError.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "SESSION"):
		return "SESSION"
	case strings.Contains(codeStr, "CATALOG"):
		return "CATALOG"
	case strings.Contains(codeStr, "SEARCH"):
		return "SEARCH"
	case strings.Contains(codeStr, "CARD") || strings.Contains(codeStr, "SHARE"):
		return "SAVE_THE_DATE"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "NOT_FOUND"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
