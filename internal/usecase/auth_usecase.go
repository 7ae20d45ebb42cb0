// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"syncfloww/internal/domain/entity"
	"syncfloww/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new email account.
type RegisterInput struct {
	Email           string
	Password        string
	PasswordConfirm string
	FullName        string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// OAuthLoginInput carries a token the client obtained from the provider.
type OAuthLoginInput struct {
	Provider    entity.ProviderType
	AccessToken string
	IDToken     string
}

// --- Output DTOs ---

// TokenPair is a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthOutput returns the authenticated user and a new session.
type AuthOutput struct {
	User   *entity.User
	Tokens TokenPair
}

// AuthUsecase defines the interface for authentication use cases.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// RefreshToken rotates the session: the presented token is revoked and a new pair issued.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error
	// OAuthLogin gets or creates the user by the provider's email.
	OAuthLogin(ctx context.Context, input *OAuthLoginInput) (*AuthOutput, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	// ResolveExternalUser maps a verified third-party identity to a local user, creating it on first sight.
	ResolveExternalUser(ctx context.Context, identity *service.ExternalIdentity) (*entity.User, error)
}
