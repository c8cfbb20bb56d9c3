package errors

import "net/http"

// Error code constants. Responses carry the human message; codes are kept
// stable for server-side logs and client branching.

// Auth error codes.
const (
	CodeAuthRequired = "AUTH_REQUIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeAuthFailed   = "AUTH_FAILED"
)

// User error codes.
const (
	CodeUserNotFound   = "USER_NOT_FOUND"
	CodeSelfComment    = "SELF_COMMENT"
	CodeProfileUpdate  = "PROFILE_UPDATE_FORBIDDEN"
	CodeMissingProfile = "MISSING_PROFILE_DATA"
)

// Topic error codes.
const (
	CodeTopicNotFound  = "TOPIC_NOT_FOUND"
	CodeTopicForbidden = "TOPIC_FORBIDDEN"
	CodeTopicInactive  = "TOPIC_NOT_ACTIVE"
)

// Argument/reply error codes.
const (
	CodeArgumentNotFound = "ARGUMENT_NOT_FOUND"
)

// Validation error codes.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
)

// Generic error codes.
const (
	CodeInternal = "INTERNAL_ERROR"
)

// ErrTopicNotActive creates the error returned when an argument targets a
// topic whose status is not active.
func ErrTopicNotActive() *AppError {
	return &AppError{
		Code:       CodeTopicInactive,
		Message:    "Topic is not active",
		HTTPStatus: http.StatusBadRequest,
	}
}

// ErrSelfComment creates the error returned when a user comments on their
// own profile.
func ErrSelfComment() *AppError {
	return &AppError{
		Code:       CodeSelfComment,
		Message:    "Cannot comment on your own profile",
		HTTPStatus: http.StatusBadRequest,
	}
}
