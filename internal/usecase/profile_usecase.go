package usecase

import (
	"context"

	"syncfloww/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput leaves nil fields unchanged.
type UpdateProfileInput struct {
	FullName  *string
	AvatarURL *string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile creates the profile from the user record when it does not exist yet.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
}
