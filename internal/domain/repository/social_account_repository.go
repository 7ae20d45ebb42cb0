package repository

import (
	"context"
	"errors"

	"syncfloww/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrSocialAccountNotFound = errors.New("social account not found")

type SocialAccountFilter struct {
	UserID   uuid.UUID
	Platform entity.Platform
	BrandID  *uuid.UUID
	Page     entity.PageRequest
}

type SocialAccountRepository interface {
	// Create fails with a conflict when the user already connected the same platform account.
	Create(ctx context.Context, account *entity.SocialAccount) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.SocialAccount, error)
	List(ctx context.Context, filter SocialAccountFilter) (*entity.Page[*entity.SocialAccount], error)
	// Update writes brand assignment and the active flag.
	Update(ctx context.Context, account *entity.SocialAccount) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
