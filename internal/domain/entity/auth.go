package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names a login method.
type ProviderType string

const (
	ProviderTypeEmail    ProviderType = "email"
	ProviderTypeGoogle   ProviderType = "google"
	ProviderTypeFacebook ProviderType = "facebook"
	ProviderTypeApple    ProviderType = "apple"
	// ProviderTypeExternal marks users first seen through a third-party bearer token.
	ProviderTypeExternal ProviderType = "external"
)

func (p ProviderType) String() string {
	return string(p)
}

// Authentication represents a single method of logging in (a credential).
// For example, a user's email/password is one record, while a linked Google account is another.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string // Provider-side id; the email address for the email provider.
	PasswordHash   string // Only set for the email provider.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized user session.
// Only the SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session is past its expiry at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
