package usecase

import (
	"context"
	"time"

	"syncfloww/internal/domain/entity"

	"github.com/google/uuid"
)

type ListAnalyticsInput struct {
	SocialAccountID uuid.UUID
	From            *time.Time
	To              *time.Time
	Page            entity.PageRequest
}

type AnalyticsUsecase interface {
	// Upsert writes the metrics for (account, date); a second call for the same pair updates the row.
	Upsert(ctx context.Context, userID, socialAccountID uuid.UUID, date time.Time, metrics entity.AnalyticsMetrics) (*entity.AnalyticsData, error)
	List(ctx context.Context, userID uuid.UUID, input *ListAnalyticsInput) (*entity.Page[*entity.AnalyticsData], error)
}
