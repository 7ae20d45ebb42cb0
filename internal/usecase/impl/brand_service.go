package impl

import (
	"context"
	"log/slog"

	deliverycontext "syncfloww/internal/delivery/context"
	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/errors"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type brandService struct {
	brandRepo  repository.BrandRepository
	socialRepo repository.SocialAccountRepository
	logger     *slog.Logger
}

type BrandServiceParams struct {
	fx.In

	BrandRepo  repository.BrandRepository
	SocialRepo repository.SocialAccountRepository
	Logger     *slog.Logger
}

// NewBrandService is the constructor for brandService.
func NewBrandService(params BrandServiceParams) usecase.BrandUsecase {
	return &brandService{
		brandRepo:  params.BrandRepo,
		socialRepo: params.SocialRepo,
		logger:     params.Logger,
	}
}

func (srv *brandService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *brandService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateBrandInput) (*entity.Brand, error) {
	brand := &entity.Brand{
		UserID:         userID,
		Name:           input.Name,
		Description:    input.Description,
		LogoURL:        input.LogoURL,
		Voice:          input.Voice,
		TargetAudience: input.TargetAudience,
		Niche:          input.Niche,
		IsActive:       true,
	}
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}

	if err := srv.brandRepo.Create(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to create brand")
	}

	srv.log(ctx).Info("Brand created", slog.Any("brandID", brand.ID), slog.Any("userID", userID))

	return brand, nil
}

func (srv *brandService) Get(ctx context.Context, userID, id uuid.UUID) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, translate(err, repository.ErrBrandNotFound, domainerrors.ErrBrandNotFound, "failed to find brand")
	}

	return brand, nil
}

func (srv *brandService) List(ctx context.Context, filter repository.BrandFilter) (*entity.Page[*entity.Brand], error) {
	page, err := srv.brandRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return page, nil
}

func (srv *brandService) Update(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdateBrandInput) (*entity.Brand, error) {
	brand, err := srv.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	setString(&brand.Name, input.Name)
	setString(&brand.Description, input.Description)
	setString(&brand.LogoURL, input.LogoURL)
	setString(&brand.Voice, input.Voice)
	setString(&brand.TargetAudience, input.TargetAudience)
	setString(&brand.Niche, input.Niche)
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}

	if err := srv.brandRepo.Update(ctx, brand); err != nil {
		return nil, translate(err, repository.ErrBrandNotFound, domainerrors.ErrBrandNotFound, "failed to update brand")
	}

	return brand, nil
}

func (srv *brandService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.brandRepo.Delete(ctx, userID, id); err != nil {
		return translate(err, repository.ErrBrandNotFound, domainerrors.ErrBrandNotFound, "failed to delete brand")
	}

	srv.log(ctx).Info("Brand deleted", slog.Any("brandID", id), slog.Any("userID", userID))

	return nil
}

func (srv *brandService) ListSocialAccounts(ctx context.Context, userID, brandID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.SocialAccount], error) {
	if _, err := srv.Get(ctx, userID, brandID); err != nil {
		return nil, err
	}

	accounts, err := srv.socialRepo.List(ctx, repository.SocialAccountFilter{
		UserID:  userID,
		BrandID: &brandID,
		Page:    page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brand social accounts")
	}

	return accounts, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
