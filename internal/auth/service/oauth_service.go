package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	authDomain "github.com/allisson/resourceapi/internal/auth/domain"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// OAuthConfig configures the authorization code exchange. Empty endpoint fields fall back
// to Google's.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
}

type oauthService struct {
	config      *oauth2.Config
	userInfoURL string
}

// NewOAuthService creates an OAuthService for the Google OpenID Connect provider.
func NewOAuthService(cfg OAuthConfig) OAuthService {
	endpoint := endpoints.Google
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	userInfoURL := cfg.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = googleUserInfoURL
	}

	return &oauthService{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       []string{"openid", "email"},
		},
		userInfoURL: userInfoURL,
	}
}

type userInfo struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
}

// Exchange trades the code for a token and fetches the caller's profile.
// Provider failures are reported as authDomain.ErrOAuthExchange.
func (o *oauthService) Exchange(ctx context.Context, code string) (*OAuthProfile, error) {
	if o.config.ClientID == "" || o.config.ClientSecret == "" {
		return nil, authDomain.ErrOAuthNotConfigured
	}
	if code == "" {
		return nil, fmt.Errorf("%w: missing code", authDomain.ErrOAuthExchange)
	}

	token, err := o.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", authDomain.ErrOAuthExchange, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}

	resp, err := o.config.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", authDomain.ErrOAuthExchange, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo returned status %d", authDomain.ErrOAuthExchange, resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %w", authDomain.ErrOAuthExchange, err)
	}
	if info.Email == "" && info.Sub == "" {
		return nil, fmt.Errorf("%w: empty profile", authDomain.ErrOAuthExchange)
	}

	return &OAuthProfile{Subject: info.Sub, Email: info.Email}, nil
}
