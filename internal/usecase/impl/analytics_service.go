package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "syncfloww/internal/delivery/context"
	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/errors"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	socialRepo    repository.SocialAccountRepository
	logger        *slog.Logger
}

type AnalyticsServiceParams struct {
	fx.In

	AnalyticsRepo repository.AnalyticsRepository
	SocialRepo    repository.SocialAccountRepository
	Logger        *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo: params.AnalyticsRepo,
		socialRepo:    params.SocialRepo,
		logger:        params.Logger,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *analyticsService) Upsert(
	ctx context.Context,
	userID, socialAccountID uuid.UUID,
	date time.Time,
	metrics entity.AnalyticsMetrics,
) (*entity.AnalyticsData, error) {
	if negative := metrics.Negative(); len(negative) > 0 {
		verr := domainerrors.NewValidationError(nil)
		for _, field := range negative {
			verr.Add(field, "Ensure this value is greater than or equal to 0.")
		}

		return nil, verr
	}

	if err := srv.ensureAccount(ctx, userID, socialAccountID); err != nil {
		return nil, err
	}

	data := &entity.AnalyticsData{
		SocialAccountID:  socialAccountID,
		Date:             time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		AnalyticsMetrics: metrics,
	}
	if err := srv.analyticsRepo.Upsert(ctx, data); err != nil {
		return nil, errors.Wrap(err, "failed to upsert analytics")
	}

	srv.log(ctx).Debug("Analytics upserted",
		slog.Any("socialAccountID", socialAccountID),
		slog.String("date", data.Date.Format(entity.DateLayout)),
	)

	return data, nil
}

func (srv *analyticsService) List(ctx context.Context, userID uuid.UUID, input *usecase.ListAnalyticsInput) (*entity.Page[*entity.AnalyticsData], error) {
	if err := srv.ensureAccount(ctx, userID, input.SocialAccountID); err != nil {
		return nil, err
	}

	page, err := srv.analyticsRepo.List(ctx, repository.AnalyticsFilter{
		SocialAccountID: input.SocialAccountID,
		From:            input.From,
		To:              input.To,
		Page:            input.Page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list analytics")
	}

	return page, nil
}

func (srv *analyticsService) ensureAccount(ctx context.Context, userID, socialAccountID uuid.UUID) error {
	if _, err := srv.socialRepo.FindByID(ctx, userID, socialAccountID); err != nil {
		return translate(err, repository.ErrSocialAccountNotFound, domainerrors.ErrSocialAccountNotFound, "failed to find social account")
	}

	return nil
}
