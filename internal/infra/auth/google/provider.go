// Package google exchanges client-held Google tokens for the account's identity.
package google

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"syncfloww/config"
	"syncfloww/internal/domain/entity"
	"syncfloww/internal/domain/service"
	"syncfloww/internal/errors"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

const (
	defaultUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
	requestTimeout     = 10 * time.Second
)

type idTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type provider struct {
	clientID    string
	userInfoURL string
	httpClient  *http.Client
	validate    idTokenValidator
}

// NewProvider builds the Google OAuthProvider. ID tokens are checked against googleOAuth.clientId.
func NewProvider(cfg *config.Config) service.OAuthProvider {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &provider{
		clientID:    clientID,
		userInfoURL: defaultUserInfoURL,
		httpClient:  &http.Client{Timeout: requestTimeout},
		validate:    idtoken.Validate,
	}
}

func (p *provider) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// FetchUser prefers the ID token when both credentials are present.
func (p *provider) FetchUser(ctx context.Context, credential service.OAuthCredential) (*service.OAuthUser, error) {
	switch {
	case credential.IDToken != "":
		return p.fromIDToken(ctx, credential.IDToken)
	case credential.AccessToken != "":
		return p.fromUserInfo(ctx, credential.AccessToken)
	default:
		return nil, service.ErrOAuthTokenInvalid
	}
}

func (p *provider) fromIDToken(ctx context.Context, token string) (*service.OAuthUser, error) {
	payload, err := p.validate(ctx, token, p.clientID)
	if err != nil {
		return nil, errors.Join(service.ErrOAuthTokenInvalid, err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, service.ErrOAuthEmailMissing
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)

	return &service.OAuthUser{
		ID:            payload.Subject,
		Email:         email,
		Name:          name,
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     picture,
		EmailVerified: verified,
	}, nil
}

type userInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (p *provider) fromUserInfo(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build google userinfo request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call google userinfo")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusBadRequest:
		return nil, service.ErrOAuthTokenInvalid
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.Wrap(err, "decode google userinfo")
	}
	if info.Sub == "" {
		return nil, service.ErrOAuthTokenInvalid
	}
	if info.Email == "" {
		return nil, service.ErrOAuthEmailMissing
	}

	return &service.OAuthUser{
		ID:            info.Sub,
		Email:         info.Email,
		Name:          info.Name,
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     info.Picture,
		EmailVerified: info.EmailVerified,
	}, nil
}
