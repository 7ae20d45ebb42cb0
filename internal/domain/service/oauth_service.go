package service

import (
	"context"
	"errors"

	"syncfloww/internal/domain/entity"
)

var (
	// ErrOAuthTokenInvalid is returned when the provider rejects the presented token.
	ErrOAuthTokenInvalid = errors.New("oauth token rejected by provider")
	// ErrOAuthEmailMissing is returned when the provider does not disclose an email.
	ErrOAuthEmailMissing = errors.New("oauth provider returned no email")
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool
}

// OAuthCredential is what the client obtained from the provider.
type OAuthCredential struct {
	AccessToken string
	IDToken     string
}

// OAuthProvider exchanges a client-held provider token for the provider's user info.
type OAuthProvider interface {
	// FetchUser returns ErrOAuthTokenInvalid or ErrOAuthEmailMissing for client-side problems.
	// Any other error is an unexpected exchange failure.
	FetchUser(ctx context.Context, credential OAuthCredential) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}

// ExternalIdentity is the subset of a third-party JWT the service relies on.
type ExternalIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}

// ExternalTokenVerifier validates bearer tokens issued by a third-party identity provider.
type ExternalTokenVerifier interface {
	Verify(ctx context.Context, token string) (*ExternalIdentity, error)
}
