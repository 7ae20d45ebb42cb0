package facebook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"syncfloww/config"
	"syncfloww/internal/domain/entity"
	"syncfloww/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) service.OAuthProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewProvider(&config.Config{FacebookOAuth: &config.FacebookOAuthConfig{GraphURL: server.URL + "/"}})
}

func TestProvider_FetchUser(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "id,name,email,picture", r.URL.Query().Get("fields"))
		assert.Equal(t, "Bearer fb-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"fb-1","name":"Cy","email":"cy@example.com","picture":{"data":{"url":"https://img/cy.jpg"}}}`))
	})

	user, err := p.FetchUser(context.Background(), service.OAuthCredential{AccessToken: "fb-token"})

	require.NoError(t, err)
	assert.Equal(t, "fb-1", user.ID)
	assert.Equal(t, "cy@example.com", user.Email)
	assert.Equal(t, "https://img/cy.jpg", user.AvatarURL)
	assert.Equal(t, entity.ProviderTypeFacebook, user.Provider)
	assert.Equal(t, entity.ProviderTypeFacebook, p.GetProvider())
}

func TestProvider_FetchUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "expired token",
			status:  http.StatusBadRequest,
			body:    `{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`,
			wantErr: service.ErrOAuthTokenInvalid,
		},
		{
			name:    "no email permission",
			status:  http.StatusOK,
			body:    `{"id":"fb-2","name":"Di"}`,
			wantErr: service.ErrOAuthEmailMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := p.FetchUser(context.Background(), service.OAuthCredential{AccessToken: "fb-token"})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProvider_FetchUser_ServerError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"unknown","type":"GraphMethodException"}}`))
	})

	_, err := p.FetchUser(context.Background(), service.OAuthCredential{AccessToken: "fb-token"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrOAuthTokenInvalid)
}

func TestProvider_FetchUser_MissingToken(t *testing.T) {
	p := NewProvider(&config.Config{})

	_, err := p.FetchUser(context.Background(), service.OAuthCredential{})

	assert.ErrorIs(t, err, service.ErrOAuthTokenInvalid)
}
