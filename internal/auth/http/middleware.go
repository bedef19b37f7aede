package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
	authUseCase "github.com/allisson/resourceapi/internal/auth/usecase"
	"github.com/allisson/resourceapi/internal/httputil"
)

const bearerPrefix = "bearer "

// AuthenticationMiddleware resolves the caller from the Authorization header.
//
// Two schemes are accepted (prefix matching is case-insensitive):
//   - "Basic <base64(username:password)>": verified against the user store with a fresh role
//     lookup; the token minted for the caller is kept in the context for the signin handler
//   - "Bearer <token>": the signed token is verified and its capability snapshot is used as is
//
// Error handling:
//   - Missing or unrecognized Authorization header → ErrUnauthenticated (401)
//   - Unknown user or wrong password → ErrInvalidCredentials (401)
//   - Bad signature, malformed or expired token → ErrInvalidToken (401)
//   - Other errors → 500
//
// Errors are recorded with httputil.AbortWithError and rendered by httputil.ErrorMiddleware.
func AuthenticationMiddleware(
	identityUseCase authUseCase.IdentityUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		authHeader := c.GetHeader("Authorization")

		var (
			principal *authDomain.Principal
			err       error
		)

		if username, password, ok := c.Request.BasicAuth(); ok {
			var token string
			principal, token, err = identityUseCase.AuthenticateBasic(ctx, username, password)
			if err == nil {
				ctx = WithIssuedToken(ctx, token)
			}
		} else if len(authHeader) > len(bearerPrefix) &&
			strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			principal, err = identityUseCase.AuthenticateBearer(ctx, strings.TrimSpace(authHeader[len(bearerPrefix):]))
		} else {
			logger.Debug("authentication failed: missing or unsupported authorization header")
			httputil.AbortWithError(c, authDomain.ErrUnauthenticated)
			return
		}

		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.AbortWithError(c, err)
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(ctx, principal))

		logger.Debug("authentication successful",
			slog.String("subject_id", principal.SubjectID.String()),
			slog.String("capabilities", principal.Capabilities.String()))

		c.Next()
	}
}

// AuthorizationMiddleware requires the authenticated principal to hold the given action.
//
// This middleware MUST be used after AuthenticationMiddleware. A principal lacking the action
// gets the permission-denial message with status 401, and the failure is published as an
// event by the authorization use case. Because it runs before the handler, a missing
// capability is reported even when the target record does not exist.
func AuthorizationMiddleware(
	action authDomain.Action,
	authorizationUseCase authUseCase.AuthorizationUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok {
			logger.Debug("authorization failed: no authenticated principal in context")
			httputil.AbortWithError(c, authDomain.ErrUnauthenticated)
			return
		}

		if err := authorizationUseCase.Authorize(c.Request.Context(), principal, action); err != nil {
			logger.Debug("authorization failed: insufficient permissions",
				slog.String("subject_id", principal.SubjectID.String()),
				slog.String("action", string(action)))
			httputil.AbortWithError(c, err)
			return
		}

		c.Next()
	}
}
