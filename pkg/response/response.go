// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-roster-service/internal/generator"
	"github.com/maxviazov/cricket-roster-service/internal/importer"
	"github.com/maxviazov/cricket-roster-service/internal/repository"
	"github.com/maxviazov/cricket-roster-service/internal/service"
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Every error kind here is recoverable by the user; only the default branch hides details.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	}

	var dup *repository.DuplicateNameError
	switch {
	case errors.As(err, &dup) && dup.Empty:
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     dup.Error(),
			FieldErrors: []service.FieldError{{Field: "name", Message: "must not be empty"}},
		}
	case errors.Is(err, repository.ErrDuplicateName):
		return http.StatusConflict, ErrorPayload{Error: "duplicate_name", Message: err.Error()}
	case errors.Is(err, repository.ErrInvalidTeamSize):
		return http.StatusBadRequest, ErrorPayload{Error: "invalid_team_size", Message: err.Error()}
	case errors.Is(err, importer.ErrImportFormat):
		return http.StatusBadRequest, ErrorPayload{Error: "invalid_import", Message: err.Error()}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, ErrorPayload{Error: "not_found"}
	case errors.Is(err, service.ErrPoolNotReady):
		return http.StatusConflict, ErrorPayload{Error: "pool_not_ready", Message: err.Error()}
	case errors.Is(err, generator.ErrGeneration):
		return http.StatusBadGateway, ErrorPayload{Error: "generation_failed", Message: service.GenerationFailedMessage}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
