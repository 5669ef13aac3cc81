package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAccountNotFound is returned when no account matches the login email.
	ErrAccountNotFound = errors.New("No account found for that email.")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("Incorrect password.")
	// ErrEmailAlreadyExists is returned by signup for a taken email (case-insensitive).
	ErrEmailAlreadyExists = errors.New("A user with that email already exists.")
	// ErrInvalidRole is returned by signup for any role other than buyer or agent.
	ErrInvalidRole = errors.New("Invalid role.")
	// ErrAuthInProgress is returned while another login or signup is outstanding.
	ErrAuthInProgress = errors.New("Another sign-in request is already in progress.")
	// ErrNotAuthenticated is returned by session-scoped operations with no active session.
	ErrNotAuthenticated = errors.New("not signed in")
	// ErrForbidden is returned when the active account's role may not use an endpoint.
	ErrForbidden = errors.New("forbidden")
	// ErrPropertyNotFound is returned when a property id is unknown.
	ErrPropertyNotFound = errors.New("property not found")
	// ErrAgentNotFound is returned when an agent id is unknown.
	ErrAgentNotFound = errors.New("agent not found")
	// ErrInsightNotFound is returned when no market insight exists for an area.
	ErrInsightNotFound = errors.New("market insight not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are unwrapped.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return NewHTTPError(http.StatusNotFound, ErrAccountNotFound.Error(), "ACCOUNT_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailAlreadyExists):
		return NewHTTPError(http.StatusConflict, ErrEmailAlreadyExists.Error(), "EMAIL_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidRole.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrAuthInProgress):
		return NewHTTPError(http.StatusTooManyRequests, ErrAuthInProgress.Error(), "AUTH_IN_PROGRESS")
	case errors.Is(err, ErrNotAuthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrNotAuthenticated.Error(), "NOT_AUTHENTICATED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrPropertyNotFound):
		return NewHTTPError(http.StatusNotFound, ErrPropertyNotFound.Error(), "PROPERTY_NOT_FOUND")
	case errors.Is(err, ErrAgentNotFound):
		return NewHTTPError(http.StatusNotFound, ErrAgentNotFound.Error(), "AGENT_NOT_FOUND")
	case errors.Is(err, ErrInsightNotFound):
		return NewHTTPError(http.StatusNotFound, ErrInsightNotFound.Error(), "INSIGHT_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
