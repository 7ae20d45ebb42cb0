package repository

import (
	"context"
	"errors"

	"syncfloww/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists the 1:1 user profile.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	// FindByUserID fills Profile.Email from the owning user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
}
