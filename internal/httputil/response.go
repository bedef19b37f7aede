// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/resourceapi/internal/errors"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusCode maps a domain error to its HTTP status code.
// Forbidden maps to 401 to stay compatible with existing clients.
func StatusCode(err error) int {
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case apperrors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case apperrors.Is(err, apperrors.ErrUnauthorized), apperrors.Is(err, apperrors.ErrForbidden):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing text for err.
func Message(err error) string {
	if msg, ok := apperrors.PublicMessage(err); ok {
		return msg
	}

	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		return "Resource Not Found"
	case apperrors.Is(err, apperrors.ErrConflict):
		return "A conflict occurred with existing data"
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		return "Invalid Login"
	case apperrors.Is(err, apperrors.ErrForbidden):
		return "Forbidden"
	default:
		// Internal failures surface the underlying message.
		return err.Error()
	}
}

// HandleErrorGin maps a domain error to a status code and writes the JSON error body.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode := StatusCode(err)
	errorResponse := ErrorResponse{Error: Message(err)}

	if logger != nil {
		level := slog.LevelInfo
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", statusCode),
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed bodies or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// WriteText writes a text/plain body, used for tokens and acknowledgements.
func WriteText(c *gin.Context, statusCode int, body string) {
	c.Data(statusCode, "text/plain; charset=utf-8", []byte(body))
}
