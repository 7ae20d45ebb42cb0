package entity

import (
	"time"

	"github.com/google/uuid"
)

type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
)

// Platforms lists every supported platform.
var Platforms = []Platform{PlatformTikTok, PlatformInstagram, PlatformYouTube, PlatformTwitter, PlatformFacebook}

func (p Platform) IsValid() bool {
	switch p {
	case PlatformTikTok, PlatformInstagram, PlatformYouTube, PlatformTwitter, PlatformFacebook:
		return true
	default:
		return false
	}
}

// SocialAccount is a connected account on a social platform.
// AccessToken and RefreshToken never leave the service.
type SocialAccount struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	BrandID         *uuid.UUID
	BrandName       string // Populated on reads when the account belongs to a brand.
	Platform        Platform
	AccountID       string
	Username        string
	DisplayName     string
	ProfileImageURL string
	AccessToken     string
	RefreshToken    string
	TokenExpiresAt  *time.Time
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
