// Package httputil maps application errors to JSON responses for the Gin router.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/clinicrecords/fieldvault/internal/errors"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// StatusFor returns the HTTP status and error code for an application error category.
func StatusFor(err error) (int, string) {
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case apperrors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, "conflict"
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusUnprocessableEntity, "invalid_input"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// HandleErrorGin writes the JSON error response for err. Internal errors never expose
// their message to the client.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode, code := StatusFor(err)
	response := ErrorResponse{Error: code, Message: err.Error()}
	if statusCode == http.StatusInternalServerError {
		response.Message = "An internal error occurred"
	}

	if logger != nil {
		level := slog.LevelWarn
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", code),
			slog.Any("error", err),
		)
	}

	c.AbortWithStatusJSON(statusCode, response)
}
