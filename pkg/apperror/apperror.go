package apperror

import "net/http"

// AppError is a domain failure that carries the HTTP status it translates to.
// Services create these; the error middleware renders them at the boundary.
type AppError struct {
	Message    string
	StatusCode int
}

func (e *AppError) Error() string {
	return e.Message
}

func New(message string, statusCode int) *AppError {
	return &AppError{Message: message, StatusCode: statusCode}
}

func BadRequest(message string) *AppError {
	return New(message, http.StatusBadRequest)
}

func Unauthorized(message string) *AppError {
	return New(message, http.StatusUnauthorized)
}

func NotFound(message string) *AppError {
	return New(message, http.StatusNotFound)
}

func Internal(message string) *AppError {
	return New(message, http.StatusInternalServerError)
}

// ValidationError carries the per-field issue tree produced by request
// validation. Always rendered as 400.
type ValidationError struct {
	Message string
	Issues  map[string][]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(issues map[string][]string) *ValidationError {
	return &ValidationError{Message: "Validation failed", Issues: issues}
}
