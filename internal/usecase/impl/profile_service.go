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
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:   txManager,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the caller's profile, creating it from the user record on first access.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var txErr error
		profile, txErr = srv.ensureProfile(ctx, repoFactory, userID)

		return txErr
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create missing profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get or create profile")
	}

	return profile, nil
}

// UpdateProfile writes the changed fields to the profile and mirrors them onto the user.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Debug("Updating profile", slog.Any("userID", userID))

	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var txErr error
		profile, txErr = srv.ensureProfile(ctx, repoFactory, userID)
		if txErr != nil {
			return txErr
		}

		if input.FullName != nil {
			profile.FullName = *input.FullName
		}
		if input.AvatarURL != nil {
			profile.AvatarURL = *input.AvatarURL
		}

		if txErr = repoFactory.ProfileRepo().Update(ctx, profile); txErr != nil {
			return errors.Wrap(txErr, "failed to update profile")
		}

		userRepo := repoFactory.UserRepo()
		user, txErr := userRepo.FindByID(ctx, userID)
		if txErr != nil {
			return translate(txErr, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
		}
		user.FullName = profile.FullName
		user.AvatarURL = profile.AvatarURL

		return errors.Wrap(userRepo.Update(ctx, user), "failed to mirror profile onto user")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update profile transaction")
	}

	return profile, nil
}

// ensureProfile must run inside a transaction.
func (srv *profileService) ensureProfile(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) (*entity.Profile, error) {
	profileRepo := repoFactory.ProfileRepo()

	profile, err := profileRepo.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	user, err := repoFactory.UserRepo().FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	profile = &entity.Profile{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
	}
	if err := profileRepo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}
