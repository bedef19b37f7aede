package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
	httpMocks "github.com/allisson/resourceapi/internal/auth/http/mocks"
)

type handlerFixture struct {
	identity *httpMocks.MockIdentityUseCase
	users    *httpMocks.MockUserUseCase
	router   *gin.Engine
}

// newHandlerFixture wires the handler behind a stub that injects principal (if any).
func newHandlerFixture(principal *authDomain.Principal, issuedToken string) *handlerFixture {
	f := &handlerFixture{
		identity: &httpMocks.MockIdentityUseCase{},
		users:    &httpMocks.MockUserUseCase{},
	}
	handler := NewAuthHandler(f.identity, f.users, newTestLogger())

	inject := func(c *gin.Context) {
		ctx := c.Request.Context()
		if principal != nil {
			ctx = WithPrincipal(ctx, principal)
		}
		if issuedToken != "" {
			ctx = WithIssuedToken(ctx, issuedToken)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}

	f.router = newTestRouter()
	f.router.POST("/signup", handler.SignUpHandler)
	f.router.POST("/signin", inject, handler.SignInHandler)
	f.router.POST("/setrole", inject, handler.SetRoleHandler)
	f.router.POST("/key", inject, handler.KeyHandler)
	f.router.GET("/oauth", handler.OAuthHandler)
	return f
}

func (f *handlerFixture) do(method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_SignUp(t *testing.T) {
	t.Run("Success_JSONBody", func(t *testing.T) {
		f := newHandlerFixture(nil, "")
		user := &authDomain.User{ID: uuid.Must(uuid.NewV7()), Username: "alice", Role: "user"}
		f.users.On("SignUp", mock.Anything, &authDomain.SignUpInput{Username: "alice", Password: "hunter22"}).
			Return(user, "signed-token", nil).Once()

		w := f.do(http.MethodPost, "/signup", "application/json", `{"username":"alice","password":"hunter22"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "signed-token", w.Body.String())
		assert.Equal(t, "signed-token", w.Header().Get("token"))
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		cookie := findCookie(w, AuthCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "signed-token", cookie.Value)
		f.users.AssertExpectations(t)
	})

	t.Run("Success_FormBody", func(t *testing.T) {
		f := newHandlerFixture(nil, "")
		user := &authDomain.User{ID: uuid.Must(uuid.NewV7()), Username: "bob", Role: "editor"}
		f.users.On("SignUp", mock.Anything, &authDomain.SignUpInput{Username: "bob", Password: "pw", Role: "editor"}).
			Return(user, "tok", nil).Once()

		form := url.Values{"username": {"bob"}, "password": {"pw"}, "role": {"editor"}}
		w := f.do(http.MethodPost, "/signup", "application/x-www-form-urlencoded", form.Encode())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tok", w.Body.String())
	})

	t.Run("Error_ValidationFailure", func(t *testing.T) {
		f := newHandlerFixture(nil, "")

		w := f.do(http.MethodPost, "/signup", "application/json", `{"username":"","password":"pw"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "username")
		f.users.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		f := newHandlerFixture(nil, "")

		w := f.do(http.MethodPost, "/signup", "application/json", `{"username":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_UsernameTaken", func(t *testing.T) {
		f := newHandlerFixture(nil, "")
		f.users.On("SignUp", mock.Anything, mock.Anything).Return(nil, "", authDomain.ErrUserAlreadyExists).Once()

		w := f.do(http.MethodPost, "/signup", "application/json", `{"username":"alice","password":"pw"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"Username already exists"}`, w.Body.String())
	})
}

func TestAuthHandler_SignIn(t *testing.T) {
	principal := authDomain.NewPrincipal(uuid.Must(uuid.NewV7()), authDomain.NewCapabilities(authDomain.ReadAction))

	t.Run("Success_BasicUsesMintedToken", func(t *testing.T) {
		f := newHandlerFixture(principal, "fresh-token")

		w := f.do(http.MethodPost, "/signin", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "fresh-token", w.Body.String())
		cookie := findCookie(w, AuthCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "fresh-token", cookie.Value)
		f.identity.AssertNotCalled(t, "Reissue", mock.Anything, mock.Anything)
	})

	t.Run("Success_BearerReissues", func(t *testing.T) {
		f := newHandlerFixture(principal, "")
		f.identity.On("Reissue", mock.Anything, principal).Return("renewed", nil).Once()

		w := f.do(http.MethodPost, "/signin", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "renewed", w.Body.String())
		f.identity.AssertExpectations(t)
	})

	t.Run("Error_NoPrincipal", func(t *testing.T) {
		f := newHandlerFixture(nil, "")

		w := f.do(http.MethodPost, "/signin", "", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_SetRole(t *testing.T) {
	principal := authDomain.NewPrincipal(uuid.Must(uuid.NewV7()), authDomain.NewCapabilities())

	t.Run("Success_OK", func(t *testing.T) {
		f := newHandlerFixture(principal, "")
		f.users.On("SetRole", mock.Anything, principal, "bob", "editor").Return(nil).Once()

		w := f.do(http.MethodPost, "/setrole", "application/json", `{"username":"bob","role":"editor"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
		f.users.AssertExpectations(t)
	})

	t.Run("Error_NotElevated", func(t *testing.T) {
		f := newHandlerFixture(principal, "")
		f.users.On("SetRole", mock.Anything, principal, "bob", "admin").
			Return(authDomain.ErrElevatedRoleRequired).Once()

		w := f.do(http.MethodPost, "/setrole", "application/json", `{"username":"bob","role":"admin"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"I'm sorry, I can't let you do that."}`, w.Body.String())
	})

	t.Run("Error_UnknownUser", func(t *testing.T) {
		f := newHandlerFixture(principal, "")
		f.users.On("SetRole", mock.Anything, principal, "ghost", "user").Return(authDomain.ErrUserNotFound).Once()

		w := f.do(http.MethodPost, "/setrole", "application/json", `{"username":"ghost","role":"user"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
	})

	t.Run("Error_UnknownRole", func(t *testing.T) {
		f := newHandlerFixture(principal, "")
		f.users.On("SetRole", mock.Anything, principal, "bob", "wizard").Return(authDomain.ErrUnknownRole).Once()

		w := f.do(http.MethodPost, "/setrole", "application/json", `{"username":"bob","role":"wizard"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"error":"Unknown role"}`, w.Body.String())
	})

	t.Run("Error_MissingRole", func(t *testing.T) {
		f := newHandlerFixture(principal, "")

		w := f.do(http.MethodPost, "/setrole", "application/json", `{"username":"bob"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		f.users.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Key(t *testing.T) {
	principal := authDomain.NewPrincipal(uuid.Must(uuid.NewV7()), authDomain.NewCapabilities(authDomain.ReadAction))

	t.Run("Success_IssuesKey", func(t *testing.T) {
		f := newHandlerFixture(principal, "")
		f.identity.On("IssueKey", mock.Anything, principal).Return("api-key", nil).Once()

		w := f.do(http.MethodPost, "/key", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "api-key", w.Body.String())
	})

	t.Run("Error_SigningFailure", func(t *testing.T) {
		f := newHandlerFixture(principal, "")
		f.identity.On("IssueKey", mock.Anything, principal).Return("", errors.New("signing failed")).Once()

		w := f.do(http.MethodPost, "/key", "", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthHandler_OAuth(t *testing.T) {
	t.Run("Success_ExchangesCode", func(t *testing.T) {
		f := newHandlerFixture(nil, "")
		f.users.On("OAuthSignIn", mock.Anything, "abc123").Return("oauth-token", nil).Once()

		w := f.do(http.MethodGet, "/oauth?code=abc123", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "oauth-token", w.Body.String())
	})

	t.Run("Error_MissingCode", func(t *testing.T) {
		f := newHandlerFixture(nil, "")

		w := f.do(http.MethodGet, "/oauth", "", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"OAuth sign in failed"}`, w.Body.String())
	})

	t.Run("Error_NotConfigured", func(t *testing.T) {
		f := newHandlerFixture(nil, "")
		f.users.On("OAuthSignIn", mock.Anything, "abc").Return("", authDomain.ErrOAuthNotConfigured).Once()

		w := f.do(http.MethodGet, "/oauth?code=abc", "", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
