package repository

import (
	"context"
	"time"

	"syncfloww/internal/domain/entity"

	"github.com/google/uuid"
)

type AnalyticsFilter struct {
	SocialAccountID uuid.UUID
	From            *time.Time
	To              *time.Time
	Page            entity.PageRequest
}

type AnalyticsRepository interface {
	// Upsert inserts or updates the (social_account_id, date) row and writes back the stored values.
	Upsert(ctx context.Context, data *entity.AnalyticsData) error
	// List orders by date descending.
	List(ctx context.Context, filter AnalyticsFilter) (*entity.Page[*entity.AnalyticsData], error)
}
