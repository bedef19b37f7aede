package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
	"github.com/allisson/resourceapi/internal/auth/http/dto"
	authUseCase "github.com/allisson/resourceapi/internal/auth/usecase"
	"github.com/allisson/resourceapi/internal/httputil"
	customValidation "github.com/allisson/resourceapi/internal/validation"
)

// AuthCookieName is the cookie carrying the signed token after signup and signin.
const AuthCookieName = "auth"

// AuthHandler handles the account endpoints: signup, signin, setrole, key and oauth.
// Tokens, keys and acknowledgements are returned as text/plain bodies.
type AuthHandler struct {
	identityUseCase authUseCase.IdentityUseCase
	userUseCase     authUseCase.UserUseCase
	logger          *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(
	identityUseCase authUseCase.IdentityUseCase,
	userUseCase authUseCase.UserUseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		identityUseCase: identityUseCase,
		userUseCase:     userUseCase,
		logger:          logger,
	}
}

// SignUpHandler registers a user and returns its token.
// POST /signup - No authentication required.
// The token is also set as the "auth" cookie and the "token" header.
func (h *AuthHandler) SignUpHandler(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.AbortWithError(c, customValidation.WrapValidationError(err))
		return
	}

	user, token, err := h.userUseCase.SignUp(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.AbortWithError(c, err)
		return
	}

	h.logger.Info("user signed up",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role))

	c.Header("token", token)
	h.setAuthCookie(c, token)
	httputil.WriteText(c, http.StatusOK, token)
}

// SignInHandler returns a token for the authenticated caller.
// POST /signin - Requires Basic or Bearer credentials.
// Basic credentials get the token minted from the current role; a Bearer token is re-signed
// with the capabilities it already carries.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	ctx := c.Request.Context()

	token, ok := GetIssuedToken(ctx)
	if !ok {
		principal, found := GetPrincipal(ctx)
		if !found {
			httputil.AbortWithError(c, authDomain.ErrUnauthenticated)
			return
		}

		var err error
		token, err = h.identityUseCase.Reissue(ctx, principal)
		if err != nil {
			httputil.AbortWithError(c, err)
			return
		}
	}

	h.setAuthCookie(c, token)
	httputil.WriteText(c, http.StatusOK, token)
}

// SetRoleHandler assigns a role to a user.
// POST /setrole - Requires authentication; only the elevated role may change roles.
func (h *AuthHandler) SetRoleHandler(c *gin.Context) {
	principal, ok := GetPrincipal(c.Request.Context())
	if !ok {
		httputil.AbortWithError(c, authDomain.ErrUnauthenticated)
		return
	}

	var req dto.SetRoleRequest
	if err := c.ShouldBind(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.AbortWithError(c, customValidation.WrapValidationError(err))
		return
	}

	if err := h.userUseCase.SetRole(c.Request.Context(), principal, req.Username, req.Role); err != nil {
		httputil.AbortWithError(c, err)
		return
	}

	h.logger.Info("role changed",
		slog.String("changed_by", principal.SubjectID.String()),
		slog.String("username", req.Username),
		slog.String("role", req.Role))

	httputil.WriteText(c, http.StatusOK, "OK")
}

// KeyHandler issues a non-expiring key for the caller.
// POST /key - Requires authentication.
func (h *AuthHandler) KeyHandler(c *gin.Context) {
	principal, ok := GetPrincipal(c.Request.Context())
	if !ok {
		httputil.AbortWithError(c, authDomain.ErrUnauthenticated)
		return
	}

	key, err := h.identityUseCase.IssueKey(c.Request.Context(), principal)
	if err != nil {
		httputil.AbortWithError(c, err)
		return
	}

	httputil.WriteText(c, http.StatusOK, key)
}

// OAuthHandler completes the provider redirect by exchanging the authorization code.
// GET /oauth?code=... - No authentication required.
func (h *AuthHandler) OAuthHandler(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		httputil.AbortWithError(c, authDomain.ErrOAuthExchange)
		return
	}

	token, err := h.userUseCase.OAuthSignIn(c.Request.Context(), code)
	if err != nil {
		httputil.AbortWithError(c, err)
		return
	}

	httputil.WriteText(c, http.StatusOK, token)
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookieName, token, 0, "/", "", c.Request.TLS != nil, true)
}
