package impl

import (
	"context"
	"log/slog"

	"syncfloww/config"
	deliverycontext "syncfloww/internal/delivery/context"
	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/errors"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ConnectStatusInitiated is the only status the connect flow reports.
const ConnectStatusInitiated = "initiated"

type socialService struct {
	socialRepo repository.SocialAccountRepository
	brandRepo  repository.BrandRepository
	connectURL string
	logger     *slog.Logger
}

type SocialServiceParams struct {
	fx.In

	Config     *config.Config
	SocialRepo repository.SocialAccountRepository
	BrandRepo  repository.BrandRepository
	Logger     *slog.Logger
}

// NewSocialService is the constructor for socialService.
func NewSocialService(params SocialServiceParams) usecase.SocialUsecase {
	var connectURL string
	if params.Config.Social != nil {
		connectURL = params.Config.Social.ConnectURL
	}

	return &socialService{
		socialRepo: params.SocialRepo,
		brandRepo:  params.BrandRepo,
		connectURL: connectURL,
		logger:     params.Logger,
	}
}

func (srv *socialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *socialService) ListAccounts(ctx context.Context, filter repository.SocialAccountFilter) (*entity.Page[*entity.SocialAccount], error) {
	page, err := srv.socialRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list social accounts")
	}

	return page, nil
}

func (srv *socialService) GetAccount(ctx context.Context, userID, id uuid.UUID) (*entity.SocialAccount, error) {
	account, err := srv.socialRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, translate(err, repository.ErrSocialAccountNotFound, domainerrors.ErrSocialAccountNotFound, "failed to find social account")
	}

	return account, nil
}

// CreateAccount stores a connected account. Accounts start active unless IsActive says otherwise.
func (srv *socialService) CreateAccount(ctx context.Context, userID uuid.UUID, input *usecase.CreateSocialAccountInput) (*entity.SocialAccount, error) {
	platform := entity.Platform(input.Platform)
	if !platform.IsValid() {
		return nil, domainerrors.ErrUnsupportedPlatform.WithDetails(input.Platform)
	}

	account := &entity.SocialAccount{
		UserID:          userID,
		Platform:        platform,
		AccountID:       input.AccountID,
		Username:        input.Username,
		DisplayName:     input.DisplayName,
		ProfileImageURL: input.ProfileImageURL,
		AccessToken:     input.AccessToken,
		RefreshToken:    input.RefreshToken,
		TokenExpiresAt:  input.TokenExpiresAt,
		IsActive:        true,
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}
	if input.BrandID != nil {
		if err := srv.assignBrand(ctx, userID, account, *input.BrandID); err != nil {
			return nil, err
		}
	}

	if err := srv.socialRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrSocialAccountAlreadyConnected) {
			srv.log(ctx).Warn("Social account already connected",
				slog.Any("userID", userID),
				slog.String("platform", input.Platform),
				slog.String("accountID", input.AccountID),
			)

			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create social account")
	}

	srv.log(ctx).Info("Social account connected", slog.Any("accountID", account.ID), slog.Any("userID", userID))

	return account, nil
}

// assignBrand reports a brand owned by someone else as a validation error.
func (srv *socialService) assignBrand(ctx context.Context, userID uuid.UUID, account *entity.SocialAccount, brandID uuid.UUID) error {
	brand, err := srv.brandRepo.FindByID(ctx, userID, brandID)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return domainerrors.NewFieldError("brand", "Invalid pk \""+brandID.String()+"\" - object does not exist.")
		}

		return errors.Wrap(err, "failed to find brand")
	}
	account.BrandID = &brand.ID
	account.BrandName = brand.Name

	return nil
}

// UpdateAccount reassigns the brand or toggles activation.
func (srv *socialService) UpdateAccount(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdateSocialAccountInput) (*entity.SocialAccount, error) {
	account, err := srv.GetAccount(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	switch {
	case input.ClearBrand:
		account.BrandID = nil
		account.BrandName = ""
	case input.BrandID != nil:
		if err := srv.assignBrand(ctx, userID, account, *input.BrandID); err != nil {
			return nil, err
		}
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}

	if err := srv.socialRepo.Update(ctx, account); err != nil {
		return nil, translate(err, repository.ErrSocialAccountNotFound, domainerrors.ErrSocialAccountNotFound, "failed to update social account")
	}

	return account, nil
}

// Connect starts the platform OAuth flow. The exchange itself is not implemented; the result points at the configured URL.
func (srv *socialService) Connect(ctx context.Context, userID uuid.UUID, platform string) (*usecase.ConnectResult, error) {
	p := entity.Platform(platform)
	if !p.IsValid() {
		return nil, domainerrors.ErrUnsupportedPlatform.WithDetails(platform)
	}

	srv.log(ctx).Info("Social connect initiated", slog.Any("userID", userID), slog.String("platform", platform))

	return &usecase.ConnectResult{
		Status:   ConnectStatusInitiated,
		Platform: p,
		URL:      srv.connectURL,
	}, nil
}

func (srv *socialService) Disconnect(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.socialRepo.Delete(ctx, userID, id); err != nil {
		return translate(err, repository.ErrSocialAccountNotFound, domainerrors.ErrSocialAccountNotFound, "failed to disconnect social account")
	}

	srv.log(ctx).Info("Social account disconnected", slog.Any("accountID", id), slog.Any("userID", userID))

	return nil
}
