package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
)

func newFakeProvider(t *testing.T, userInfoStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.Form.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "provider-access-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer provider-access-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(userInfoStatus)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"sub":   "1234567890",
			"email": "alice@example.com",
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestOAuthService(server *httptest.Server) OAuthService {
	return NewOAuthService(OAuthConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost/oauth",
		AuthURL:      server.URL + "/auth",
		TokenURL:     server.URL + "/token",
		UserInfoURL:  server.URL + "/userinfo",
	})
}

func TestOAuthService_Exchange(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ReturnsProfile", func(t *testing.T) {
		svc := newTestOAuthService(newFakeProvider(t, http.StatusOK))

		profile, err := svc.Exchange(ctx, "good-code")
		require.NoError(t, err)
		assert.Equal(t, "1234567890", profile.Subject)
		assert.Equal(t, "alice@example.com", profile.Email)
	})

	t.Run("Failure_RejectedCode", func(t *testing.T) {
		svc := newTestOAuthService(newFakeProvider(t, http.StatusOK))

		_, err := svc.Exchange(ctx, "bad-code")
		assert.ErrorIs(t, err, authDomain.ErrOAuthExchange)
	})

	t.Run("Failure_MissingCode", func(t *testing.T) {
		svc := newTestOAuthService(newFakeProvider(t, http.StatusOK))

		_, err := svc.Exchange(ctx, "")
		assert.ErrorIs(t, err, authDomain.ErrOAuthExchange)
	})

	t.Run("Failure_UserInfoError", func(t *testing.T) {
		svc := newTestOAuthService(newFakeProvider(t, http.StatusInternalServerError))

		_, err := svc.Exchange(ctx, "good-code")
		assert.ErrorIs(t, err, authDomain.ErrOAuthExchange)
	})

	t.Run("Failure_NotConfigured", func(t *testing.T) {
		svc := NewOAuthService(OAuthConfig{})

		_, err := svc.Exchange(ctx, "good-code")
		assert.ErrorIs(t, err, authDomain.ErrOAuthNotConfigured)
	})
}
