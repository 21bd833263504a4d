// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/studio-backoffice/internal/repository"
	"github.com/maxviazov/studio-backoffice/internal/service"
)

// Envelope wraps every successful payload.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Success     bool                 `json:"success"`
	Error       string               `json:"error"`
	Message     string               `json:"message"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Causes behind a retrieval failure are never echoed to the client.
func MapError(err error) (int, ErrorPayload) {
	switch {
	case err == nil:
		return http.StatusOK, ErrorPayload{Success: true}
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, ErrorPayload{Error: "not_found", Message: "record not found"}
	case errors.Is(err, service.ErrRetrievalFailed):
		return http.StatusInternalServerError, ErrorPayload{Error: "retrieval_failed", Message: "failed to retrieve records"}
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict, ErrorPayload{Error: "already_exists", Message: "record already exists"}
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, ErrorPayload{Error: "conflict", Message: "conflicting request"}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error", Message: "internal server error"}
	}
}

// WriteError writes an error response and aborts the context. The error is attached
// to the gin context so the access log can report it.
func WriteError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// WriteMessage writes a failure envelope that did not come from a domain error,
// e.g. unknown routes.
func WriteMessage(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorPayload{Error: code, Message: message})
}
