package postgres

import (
	"context"
	"time"

	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/errors"
	"syncfloww/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var analyticsMetricColumns = []string{
	"followers", "following", "likes", "comments", "shares",
	"impressions", "reach", "profile_views", "website_clicks", "updated_at",
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// Upsert relies on the unique (social_account_id, date) index.
func (repo *analyticsRepository) Upsert(ctx context.Context, data *entity.AnalyticsData) error {
	dataM := fromAnalyticsDomain(data)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "social_account_id"}, {Name: "date"}},
				DoUpdates: clause.AssignmentColumns(analyticsMetricColumns),
			},
			clause.Returning{},
		).
		Create(dataM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("analytics metrics must be non-negative")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSocialAccountNotFound.WrapMessage("invalid social account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert analytics")
	}

	*data = *toAnalyticsDomain(dataM)

	return nil
}

func (repo *analyticsRepository) List(ctx context.Context, filter repository.AnalyticsFilter) (*entity.Page[*entity.AnalyticsData], error) {
	query := repo.db.Model(&model.AnalyticsDataModel{}).Where("social_account_id = ?", filter.SocialAccountID)
	if filter.From != nil {
		query = query.Where("date >= ?", filter.From.Format(entity.DateLayout))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To.Format(entity.DateLayout))
	}

	rows, total, err := paginate[model.AnalyticsDataModel](ctx, query, filter.Page, "date DESC")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list analytics")
	}

	return mapPage(rows, total, filter.Page, toAnalyticsDomain), nil
}

func toAnalyticsDomain(data *model.AnalyticsDataModel) *entity.AnalyticsData {
	return &entity.AnalyticsData{
		ID:              data.ID,
		SocialAccountID: data.SocialAccountID,
		Date:            data.Date,
		AnalyticsMetrics: entity.AnalyticsMetrics{
			Followers:     data.Followers,
			Following:     data.Following,
			Likes:         data.Likes,
			Comments:      data.Comments,
			Shares:        data.Shares,
			Impressions:   data.Impressions,
			Reach:         data.Reach,
			ProfileViews:  data.ProfileViews,
			WebsiteClicks: data.WebsiteClicks,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAnalyticsDomain(data *entity.AnalyticsData) *model.AnalyticsDataModel {
	y, m, d := data.Date.Date()

	return &model.AnalyticsDataModel{
		ID:              data.ID,
		SocialAccountID: data.SocialAccountID,
		Date:            time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Followers:       data.Followers,
		Following:       data.Following,
		Likes:           data.Likes,
		Comments:        data.Comments,
		Shares:          data.Shares,
		Impressions:     data.Impressions,
		Reach:           data.Reach,
		ProfileViews:    data.ProfileViews,
		WebsiteClicks:   data.WebsiteClicks,
	}
}
