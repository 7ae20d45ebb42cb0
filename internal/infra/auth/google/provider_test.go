package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"syncfloww/config"
	"syncfloww/internal/domain/entity"
	"syncfloww/internal/domain/service"
	"syncfloww/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *provider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p := NewProvider(&config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "client-123"}}).(*provider)
	p.userInfoURL = server.URL

	return p
}

func TestProvider_FetchUser_AccessToken(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ya29.token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sub":"g-1","email":"ana@example.com","email_verified":true,"name":"Ana","picture":"https://img/ana.png"}`))
	})

	user, err := p.FetchUser(context.Background(), service.OAuthCredential{AccessToken: "ya29.token"})

	require.NoError(t, err)
	assert.Equal(t, "g-1", user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "https://img/ana.png", user.AvatarURL)
	assert.True(t, user.EmailVerified)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
}

func TestProvider_FetchUser_AccessTokenRejected(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := p.FetchUser(context.Background(), service.OAuthCredential{AccessToken: "expired"})

	assert.ErrorIs(t, err, service.ErrOAuthTokenInvalid)
}

func TestProvider_FetchUser_MissingEmail(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"sub":"g-1","name":"Ana"}`))
	})

	_, err := p.FetchUser(context.Background(), service.OAuthCredential{AccessToken: "ya29.token"})

	assert.ErrorIs(t, err, service.ErrOAuthEmailMissing)
}

func TestProvider_FetchUser_UpstreamFailure(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := p.FetchUser(context.Background(), service.OAuthCredential{AccessToken: "ya29.token"})

	require.Error(t, err)
	assert.False(t, errors.IsAny(err, service.ErrOAuthTokenInvalid, service.ErrOAuthEmailMissing))
}

func TestProvider_FetchUser_IDToken(t *testing.T) {
	p := NewProvider(&config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "client-123"}}).(*provider)
	p.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "id-token", token)
		assert.Equal(t, "client-123", audience)

		return &idtoken.Payload{
			Subject: "g-2",
			Claims: map[string]any{
				"email":          "bo@example.com",
				"email_verified": true,
				"name":           "Bo",
			},
		}, nil
	}

	user, err := p.FetchUser(context.Background(), service.OAuthCredential{IDToken: "id-token", AccessToken: "ignored"})

	require.NoError(t, err)
	assert.Equal(t, "g-2", user.ID)
	assert.Equal(t, "bo@example.com", user.Email)
}

func TestProvider_FetchUser_IDTokenInvalid(t *testing.T) {
	p := NewProvider(&config.Config{}).(*provider)
	p.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	}

	_, err := p.FetchUser(context.Background(), service.OAuthCredential{IDToken: "stale"})

	assert.ErrorIs(t, err, service.ErrOAuthTokenInvalid)
}

func TestProvider_FetchUser_NoCredential(t *testing.T) {
	p := NewProvider(&config.Config{}).(*provider)

	_, err := p.FetchUser(context.Background(), service.OAuthCredential{})

	assert.ErrorIs(t, err, service.ErrOAuthTokenInvalid)
}
