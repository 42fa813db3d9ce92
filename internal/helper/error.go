package helper

import "net/http"

const (
	MsgInternalServerError = "Internal Server Error"
	MsgBadRequest          = "Bad Request"
	MsgNotFound            = "Not Found"
	MsgUnauthorized        = "Unauthorized"
	MsgForbidden           = "Forbidden"
	MsgConflict            = "Conflict"
	MsgUnprocessable       = "Unprocessable Entity"
	MsgMethodNotAllowed    = "Method Not Allowed"
	MsgTooManyRequests     = "Too Many Requests"
	MsgServiceUnavailable  = "Service Unavailable"
)

type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewBadRequestError covers malformed or missing input; the message is
// surfaced verbatim to the caller.
func NewBadRequestError(message string) *AppError {
	if message == "" {
		message = MsgBadRequest
	}
	return NewAppError(http.StatusBadRequest, message)
}

// NewConflictError marks a lost concurrent write race. Callers should re-read
// and retry; the server never retries beyond its own bounded attempts.
func NewConflictError(message string) *AppError {
	if message == "" {
		message = MsgConflict
	}
	return NewAppError(http.StatusConflict, message)
}

// NewUnprocessableError covers requests that are well-formed but not
// permitted by current state, such as an illegal status transition or a
// duplicate link that would create a cycle.
func NewUnprocessableError(message string) *AppError {
	if message == "" {
		message = MsgUnprocessable
	}
	return NewAppError(http.StatusUnprocessableEntity, message)
}

func NewInternalServerError(message string) *AppError {
	if message == "" {
		message = MsgInternalServerError
	}
	return NewAppError(http.StatusInternalServerError, message)
}

func NewNotFoundError(message string) *AppError {
	if message == "" {
		message = MsgNotFound
	}
	return NewAppError(http.StatusNotFound, message)
}

func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = MsgUnauthorized
	}
	return NewAppError(http.StatusUnauthorized, message)
}

func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = MsgForbidden
	}
	return NewAppError(http.StatusForbidden, message)
}

func NewMethodNotAllowedError(message string) *AppError {
	if message == "" {
		message = MsgMethodNotAllowed
	}
	return NewAppError(http.StatusMethodNotAllowed, message)
}

func NewTooManyRequestsError(message string) *AppError {
	if message == "" {
		message = MsgTooManyRequests
	}
	return NewAppError(http.StatusTooManyRequests, message)
}

func NewServiceUnavailableError(message string) *AppError {
	if message == "" {
		message = MsgServiceUnavailable
	}
	return NewAppError(http.StatusServiceUnavailable, message)
}
