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

type projectService struct {
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(projectRepo repository.ProjectRepository, logger *slog.Logger) usecase.ProjectUsecase {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *projectService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateProjectInput) (*entity.Project, error) {
	status := input.Status
	if status == "" {
		status = entity.ProjectStatusDraft
	}

	project := &entity.Project{
		UserID:           userID,
		Title:            input.Title,
		Description:      input.Description,
		ThumbnailURL:     input.ThumbnailURL,
		ProjectType:      input.ProjectType,
		GenerationsCount: entity.DefaultGenerationsCount,
		Status:           status,
	}
	if err := srv.projectRepo.Create(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	srv.log(ctx).Info("Project created", slog.Any("projectID", project.ID), slog.Any("userID", userID))

	return project, nil
}

func (srv *projectService) Get(ctx context.Context, userID, id uuid.UUID) (*entity.Project, error) {
	project, err := srv.projectRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, translate(err, repository.ErrProjectNotFound, domainerrors.ErrProjectNotFound, "failed to find project")
	}

	return project, nil
}

func (srv *projectService) List(ctx context.Context, filter repository.ProjectFilter) (*entity.Page[*entity.Project], error) {
	page, err := srv.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return page, nil
}

func (srv *projectService) Update(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdateProjectInput) (*entity.Project, error) {
	project, err := srv.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.ThumbnailURL != nil {
		project.ThumbnailURL = *input.ThumbnailURL
	}
	if input.ProjectType != nil {
		project.ProjectType = *input.ProjectType
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.GenerationsCount != nil {
		if *input.GenerationsCount < 0 {
			return nil, domainerrors.NewFieldError("generations_count", "Ensure this value is greater than or equal to 0.")
		}
		project.GenerationsCount = *input.GenerationsCount
	}

	if err := srv.projectRepo.Update(ctx, project); err != nil {
		return nil, translate(err, repository.ErrProjectNotFound, domainerrors.ErrProjectNotFound, "failed to update project")
	}

	return project, nil
}

func (srv *projectService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.projectRepo.Delete(ctx, userID, id); err != nil {
		return translate(err, repository.ErrProjectNotFound, domainerrors.ErrProjectNotFound, "failed to delete project")
	}

	srv.log(ctx).Info("Project deleted", slog.Any("projectID", id), slog.Any("userID", userID))

	return nil
}
