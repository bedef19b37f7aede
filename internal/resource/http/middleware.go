package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/allisson/resourceapi/internal/httputil"
	"github.com/allisson/resourceapi/internal/metrics"
	resourceUseCase "github.com/allisson/resourceapi/internal/resource/usecase"
)

// Resolver finds the adapter registered for a resource type name.
type Resolver interface {
	Resolve(name string) (resourceUseCase.ResourceAdapter, error)
}

// ResourceTypeMiddleware resolves the :model path parameter to its adapter. It runs before
// authentication so an unknown type is reported as 404 to any caller.
func ResourceTypeMiddleware(resolver Resolver, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("model")

		adapter, err := resolver.Resolve(name)
		if err != nil {
			logger.Debug("unknown resource type", slog.String("model", name))
			httputil.AbortWithError(c, err)
			return
		}

		c.Set(metrics.ModelKey, adapter.Name())
		c.Request = c.Request.WithContext(WithAdapter(c.Request.Context(), adapter))
		c.Next()
	}
}
