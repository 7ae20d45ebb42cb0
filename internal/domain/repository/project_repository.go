package repository

import (
	"context"
	"errors"

	"syncfloww/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectFilter narrows a project listing to one owner.
type ProjectFilter struct {
	UserID      uuid.UUID
	Status      entity.ProjectStatus
	ProjectType entity.ProjectType
	Search      string
	Ordering    string // created_at | updated_at | title, optional "-" prefix.
	Page        entity.PageRequest
}

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	// FindByID returns ErrProjectNotFound for missing or foreign ids.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Project, error)
	List(ctx context.Context, filter ProjectFilter) (*entity.Page[*entity.Project], error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
