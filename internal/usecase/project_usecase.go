package usecase

import (
	"context"

	"syncfloww/internal/domain/entity"
	"syncfloww/internal/domain/repository"

	"github.com/google/uuid"
)

type CreateProjectInput struct {
	Title        string
	Description  string
	ThumbnailURL string
	ProjectType  entity.ProjectType
	Status       entity.ProjectStatus
}

// UpdateProjectInput leaves nil fields unchanged.
type UpdateProjectInput struct {
	Title            *string
	Description      *string
	ThumbnailURL     *string
	ProjectType      *entity.ProjectType
	Status           *entity.ProjectStatus
	GenerationsCount *int
}

type ProjectUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateProjectInput) (*entity.Project, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*entity.Project, error)
	List(ctx context.Context, filter repository.ProjectFilter) (*entity.Page[*entity.Project], error)
	Update(ctx context.Context, userID, id uuid.UUID, input *UpdateProjectInput) (*entity.Project, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
