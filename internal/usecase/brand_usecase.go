package usecase

import (
	"context"

	"syncfloww/internal/domain/entity"
	"syncfloww/internal/domain/repository"

	"github.com/google/uuid"
)

type CreateBrandInput struct {
	Name           string
	Description    string
	LogoURL        string
	Voice          string
	TargetAudience string
	Niche          string
	IsActive       *bool // Defaults to true.
}

// UpdateBrandInput leaves nil fields unchanged.
type UpdateBrandInput struct {
	Name           *string
	Description    *string
	LogoURL        *string
	Voice          *string
	TargetAudience *string
	Niche          *string
	IsActive       *bool
}

type BrandUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateBrandInput) (*entity.Brand, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*entity.Brand, error)
	List(ctx context.Context, filter repository.BrandFilter) (*entity.Page[*entity.Brand], error)
	Update(ctx context.Context, userID, id uuid.UUID, input *UpdateBrandInput) (*entity.Brand, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	// ListSocialAccounts returns the brand's accounts; the brand must belong to userID.
	ListSocialAccounts(ctx context.Context, userID, brandID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.SocialAccount], error)
}
