package errors

import "net/http"

// HTTPError represents an HTTP error with status code, code and message.
type HTTPError struct {
	Code       string
	Message    string
	Field      string
	StatusCode int
}

// NewHTTPError returns a new HTTPError.
// If statusCode is 0, it defaults to http.StatusBadRequest.
func NewHTTPError(statusCode int, code, message string) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithField returns a copy of e bound to field.
func (e *HTTPError) WithField(field string) *HTTPError {
	cp := *e
	cp.Field = field
	return &cp
}

// WithMessage returns a copy of e with message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	cp := *e
	cp.Message = message
	return &cp
}

// NewUnauthorizedHTTPError returns a 401 Unauthorized error.
func NewUnauthorizedHTTPError(code string) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    MessageUnauthorized,
		StatusCode: StatusUnauthorized,
	}
}

// NewForbiddenHTTPError returns a 403 Forbidden error.
func NewForbiddenHTTPError(code string) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    MessageForbidden,
		StatusCode: StatusForbidden,
	}
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	return e.Message
}
