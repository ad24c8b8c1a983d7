package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeAuthBadCredentials ErrorCode = "AUTH-001"
	ErrCodeAuthTokenExpired   ErrorCode = "AUTH-002"
	ErrCodeAuthNotLoggedIn    ErrorCode = "AUTH-003"
	ErrCodeAuthRegisterDenied ErrorCode = "AUTH-004"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionCorrupt    ErrorCode = "SESSION-001"
	ErrCodeSessionPersist    ErrorCode = "SESSION-002"
	ErrCodeSessionIncomplete ErrorCode = "SESSION-003"
	ErrCodeSessionStateDir   ErrorCode = "SESSION-004"

	// Authorization errors (RBAC-001 to RBAC-099)
	ErrCodeRoleDenied  ErrorCode = "RBAC-001"
	ErrCodeRoleUnknown ErrorCode = "RBAC-002"
	ErrCodeEditDenied  ErrorCode = "RBAC-003"

	// Product errors (PRODUCT-001 to PRODUCT-099)
	ErrCodeProductNotFound     ErrorCode = "PRODUCT-001"
	ErrCodeProductInvalid      ErrorCode = "PRODUCT-002"
	ErrCodeProductBadStatus    ErrorCode = "PRODUCT-003"
	ErrCodeProductNoAttachment ErrorCode = "PRODUCT-004"

	// User management errors (USER-001 to USER-099)
	ErrCodeUserNotFound ErrorCode = "USER-001"
	ErrCodeUserInvalid  ErrorCode = "USER-002"

	// Attachment errors (UPLOAD-001 to UPLOAD-099)
	ErrCodeUploadNoFile       ErrorCode = "UPLOAD-001"
	ErrCodeUploadNotPDF       ErrorCode = "UPLOAD-002"
	ErrCodeUploadNameMismatch ErrorCode = "UPLOAD-003"
	ErrCodeUploadFailed       ErrorCode = "UPLOAD-004"

	// Validation errors (VALIDATION-001 to VALIDATION-099)
	ErrCodeValidationRequired ErrorCode = "VALIDATION-001"
	ErrCodeValidationCAS      ErrorCode = "VALIDATION-002"

	// API transport errors (API-001 to API-099)
	ErrCodeAPIRequest     ErrorCode = "API-001"
	ErrCodeAPIResponse    ErrorCode = "API-002"
	ErrCodeAPIUnavailable ErrorCode = "API-003"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeFileUnmarshal   ErrorCode = "IO-004"
)

// ConsoleError represents an enhanced error with code, suggestions, and documentation
type ConsoleError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *ConsoleError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ConsoleError) Unwrap() error {
	return e.Cause
}

// New creates a new ConsoleError
func New(code ErrorCode, message string) *ConsoleError {
	return &ConsoleError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ConsoleError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *ConsoleError {
	return &ConsoleError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *ConsoleError) WithSuggestion(suggestion string) *ConsoleError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *ConsoleError) WithSuggestions(suggestions ...string) *ConsoleError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *ConsoleError) WithDocs(url string) *ConsoleError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewNotLoggedInError creates an error for commands that require a session
func NewNotLoggedInError() *ConsoleError {
	return New(ErrCodeAuthNotLoggedIn, "you are not logged in").
		WithSuggestion("Run 'quimidocs login --email <email>' to authenticate").
		WithSuggestion("Run 'quimidocs status' to inspect the stored session")
}

// NewRoleDeniedError creates an access-denied error for a role check
func NewRoleDeniedError(action string) *ConsoleError {
	return New(ErrCodeRoleDenied, fmt.Sprintf("access denied: your role cannot %s", action)).
		WithSuggestion("Ask an administrator to perform this action or to raise your access level")
}

// NewSessionCorruptError creates an error for unreadable persisted session state
func NewSessionCorruptError(cause error) *ConsoleError {
	return Wrap(ErrCodeSessionCorrupt, "stored session is unreadable and was discarded", cause).
		WithSuggestion("Run 'quimidocs login' to create a fresh session")
}

// NewCASInvalidError creates a CAS number validation error
func NewCASInvalidError(cas string) *ConsoleError {
	return New(ErrCodeValidationCAS, fmt.Sprintf("invalid CAS number: %s", cas)).
		WithSuggestion("A CAS number looks like 7732-18-5: digit groups separated by hyphens").
		WithSuggestion("The final digit is a checksum; verify it against the registry entry")
}

// NewRequiredFieldError creates a missing-required-field validation error
func NewRequiredFieldError(fields ...string) *ConsoleError {
	return New(ErrCodeValidationRequired, fmt.Sprintf("missing required field(s): %s", strings.Join(fields, ", "))).
		WithSuggestion("Fill in all required fields before submitting")
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *ConsoleError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *ConsoleError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
