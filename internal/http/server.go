// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
	authHTTP "github.com/allisson/resourceapi/internal/auth/http"
	authUseCase "github.com/allisson/resourceapi/internal/auth/usecase"
	"github.com/allisson/resourceapi/internal/config"
	apperrors "github.com/allisson/resourceapi/internal/errors"
	"github.com/allisson/resourceapi/internal/httputil"
	"github.com/allisson/resourceapi/internal/metrics"
	resourceHTTP "github.com/allisson/resourceapi/internal/resource/http"
)

// Server is the API server. SetupRouter must be called before Start.
type Server struct {
	listener
	db     *sql.DB
	router *gin.Engine
}

// NewServer creates a new HTTP server
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		listener: newListener("http server", host, port, logger),
		db:       db,
	}
}

// RouterDependencies groups the handlers and use cases mounted by SetupRouter.
type RouterDependencies struct {
	AuthHandler          *authHTTP.AuthHandler
	ResourceHandler      *resourceHTTP.ResourceHandler
	IdentityUseCase      authUseCase.IdentityUseCase
	AuthorizationUseCase authUseCase.AuthorizationUseCase
	Registry             resourceHTTP.Resolver
	Publisher            httputil.ErrorPublisher
	MetricsProvider      *metrics.Provider
}

// SetupRouter builds the gin engine. ctx bounds the lifetime of the rate limiter cleanup
// goroutines.
//
// Middleware order for /api/v1/:model is part of the contract: the resource type is resolved
// before authentication, and authorization runs before the handler so a missing capability
// shadows a missing record.
func (s *Server) SetupRouter(ctx context.Context, cfg *config.Config, deps RouterDependencies) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))
	if cfg.MetricsEnabled && deps.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(deps.MetricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}
	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	router.Use(httputil.ErrorMiddleware(deps.Publisher, s.logger))
	router.Use(httputil.RecoveryMiddleware(s.logger))

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	authenticate := authHTTP.AuthenticationMiddleware(deps.IdentityUseCase, s.logger)

	credentialLimit := []gin.HandlerFunc{}
	if cfg.RateLimitAuthEnabled {
		credentialLimit = append(credentialLimit, authHTTP.IPRateLimitMiddleware(
			ctx, cfg.RateLimitAuthRequestsPerSec, cfg.RateLimitAuthBurst, s.logger,
		))
	}

	router.POST("/signup", chain(credentialLimit, deps.AuthHandler.SignUpHandler)...)
	router.POST("/signin", chain(credentialLimit, authenticate, deps.AuthHandler.SignInHandler)...)
	router.GET("/oauth", chain(credentialLimit, deps.AuthHandler.OAuthHandler)...)
	router.POST("/setrole", authenticate, deps.AuthHandler.SetRoleHandler)
	router.POST("/key", authenticate, deps.AuthHandler.KeyHandler)

	api := router.Group("/api/v1/:model")
	api.Use(resourceHTTP.ResourceTypeMiddleware(deps.Registry, s.logger))
	api.Use(authenticate)
	if cfg.RateLimitEnabled {
		api.Use(authHTTP.RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	allow := func(action authDomain.Action) gin.HandlerFunc {
		return authHTTP.AuthorizationMiddleware(action, deps.AuthorizationUseCase, s.logger)
	}

	api.GET("", allow(authDomain.ReadAction), deps.ResourceHandler.ListHandler)
	api.POST("", allow(authDomain.CreateAction), deps.ResourceHandler.CreateHandler)
	api.GET("/:id", allow(authDomain.ReadAction), deps.ResourceHandler.GetHandler)
	api.PUT("/:id", allow(authDomain.UpdateAction), deps.ResourceHandler.UpdateHandler)
	api.DELETE("/:id", allow(authDomain.DeleteAction), deps.ResourceHandler.DeleteHandler)

	router.NoRoute(func(c *gin.Context) {
		httputil.AbortWithError(c, apperrors.ErrNotFound)
	})

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start blocks until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	return s.serve(s.router)
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.shutdown(ctx)
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}
	status := http.StatusOK

	if s.db == nil {
		components["database"] = "error"
		status = http.StatusServiceUnavailable
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			components["database"] = "error"
			status = http.StatusServiceUnavailable
		}
	}

	body := gin.H{"status": "ready", "components": components}
	if status != http.StatusOK {
		body["status"] = "not_ready"
	}
	c.JSON(status, body)
}

func chain(prefix []gin.HandlerFunc, handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(prefix)+len(handlers))
	out = append(out, prefix...)
	return append(out, handlers...)
}
