package exitcode

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// ValidationError indicates client-side validation blocked the action
	ValidationError = 3

	// AuthError indicates missing or failed authentication
	AuthError = 4

	// Forbidden indicates the session's role is not allowed the action
	Forbidden = 5

	// NetworkError indicates a network connectivity issue
	NetworkError = 6

	// Interrupted indicates the run was cancelled by a signal
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	code := DetermineExitCode(err)
	Exit(code)
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	// Coded errors map directly by category.
	var cerr *errors.ConsoleError
	if stderrors.As(err, &cerr) {
		switch {
		// The server refusing a registration is an authorization
		// failure, not a credential problem.
		case cerr.Code == errors.ErrCodeAuthRegisterDenied:
			return Forbidden
		case strings.HasPrefix(string(cerr.Code), "AUTH-"),
			strings.HasPrefix(string(cerr.Code), "SESSION-"):
			return AuthError
		case strings.HasPrefix(string(cerr.Code), "RBAC-"):
			return Forbidden
		case strings.HasPrefix(string(cerr.Code), "VALIDATION-"),
			strings.HasPrefix(string(cerr.Code), "UPLOAD-"):
			return ValidationError
		case strings.HasPrefix(string(cerr.Code), "API-"):
			return NetworkError
		}
	}

	errMsg := strings.ToLower(err.Error())

	// Authorization failures
	if strings.Contains(errMsg, "access denied") || strings.Contains(errMsg, "forbidden") {
		return Forbidden
	}

	// Authentication failures
	if strings.Contains(errMsg, "not logged in") || strings.Contains(errMsg, "unauthorized") {
		return AuthError
	}
	if strings.Contains(errMsg, "token") && strings.Contains(errMsg, "expired") {
		return AuthError
	}

	// Network failures
	if strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "no such host") {
		return NetworkError
	}
	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline exceeded") {
		return NetworkError
	}

	return GeneralError
}
