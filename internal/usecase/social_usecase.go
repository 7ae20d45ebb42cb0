package usecase

import (
	"context"
	"time"

	"syncfloww/internal/domain/entity"
	"syncfloww/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateSocialAccountInput records an account whose platform tokens were obtained outside the service.
type CreateSocialAccountInput struct {
	Platform        string
	AccountID       string
	Username        string
	DisplayName     string
	ProfileImageURL string
	BrandID         *uuid.UUID
	AccessToken     string
	RefreshToken    string
	TokenExpiresAt  *time.Time
	IsActive        *bool
}

// UpdateSocialAccountInput changes brand assignment and activation.
// Set ClearBrand to unassign; BrandID is ignored then.
type UpdateSocialAccountInput struct {
	BrandID    *uuid.UUID
	ClearBrand bool
	IsActive   *bool
}

// ConnectResult is the placeholder answer of the connect flow.
type ConnectResult struct {
	Status   string
	Platform entity.Platform
	URL      string
}

type SocialUsecase interface {
	ListAccounts(ctx context.Context, filter repository.SocialAccountFilter) (*entity.Page[*entity.SocialAccount], error)
	CreateAccount(ctx context.Context, userID uuid.UUID, input *CreateSocialAccountInput) (*entity.SocialAccount, error)
	GetAccount(ctx context.Context, userID, id uuid.UUID) (*entity.SocialAccount, error)
	UpdateAccount(ctx context.Context, userID, id uuid.UUID, input *UpdateSocialAccountInput) (*entity.SocialAccount, error)
	Connect(ctx context.Context, userID uuid.UUID, platform string) (*ConnectResult, error)
	Disconnect(ctx context.Context, userID, id uuid.UUID) error
}
