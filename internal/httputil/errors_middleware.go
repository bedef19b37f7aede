package httputil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	eventDomain "github.com/allisson/resourceapi/internal/event/domain"
)

// ErrorPublisher receives internal failures as database/error events.
type ErrorPublisher interface {
	Publish(ctx context.Context, channel, topic string, payload any)
}

// AbortWithError records err on the gin context and stops the handler chain.
// ErrorMiddleware renders the response.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorMiddleware is the single stage that turns errors recorded with AbortWithError into
// a status code and an {error} body. Internal failures are also published as events.
// It must be registered before any middleware or handler that records errors.
func ErrorMiddleware(publisher ErrorPublisher, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if StatusCode(err) >= http.StatusInternalServerError && publisher != nil {
			publisher.Publish(c.Request.Context(), eventDomain.ChannelDatabase, eventDomain.TopicError,
				map[string]string{"error": Message(err)})
		}

		HandleErrorGin(c, err, logger)
	}
}

// RecoveryMiddleware turns a handler panic into an internal error recorded for
// ErrorMiddleware, so panics get the same {error} body and database/error event as any
// other 500. Register it directly after ErrorMiddleware.
func RecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		if logger != nil {
			logger.Error("panic recovered",
				slog.String("path", c.Request.URL.Path),
				slog.Any("panic", recovered),
			)
		}
		AbortWithError(c, fmt.Errorf("panic: %v", recovered))
	})
}
