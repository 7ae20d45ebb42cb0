package postgres

import (
	"context"
	"time"

	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/errors"
	"syncfloww/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultProjectOrder = "created_at DESC"

var projectOrderings = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"title":      "title",
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid project owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

func (repo *projectRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&projectM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	return toProjectDomain(&projectM), nil
}

func (repo *projectRepository) List(ctx context.Context, filter repository.ProjectFilter) (*entity.Page[*entity.Project], error) {
	query := repo.db.Model(&model.ProjectModel{}).Where("user_id = ?", filter.UserID)
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.ProjectType != "" {
		query = query.Where("project_type = ?", string(filter.ProjectType))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	rows, total, err := paginate[model.ProjectModel](ctx, query, filter.Page, orderBy(filter.Ordering, projectOrderings, defaultProjectOrder))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return mapPage(rows, total, filter.Page, toProjectDomain), nil
}

func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ? AND user_id = ?", project.ID, project.UserID).
		Updates(map[string]any{
			"title":             project.Title,
			"description":       project.Description,
			"thumbnail_url":     project.ThumbnailURL,
			"project_type":      string(project.ProjectType),
			"generations_count": project.GenerationsCount,
			"status":            string(project.Status),
			"updated_at":        now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	project.UpdatedAt = now

	return nil
}

func (repo *projectRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ProjectModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	return &entity.Project{
		ID:               data.ID,
		UserID:           data.UserID,
		Title:            data.Title,
		Description:      data.Description,
		ThumbnailURL:     data.ThumbnailURL,
		ProjectType:      entity.ProjectType(data.ProjectType),
		GenerationsCount: data.GenerationsCount,
		Status:           entity.ProjectStatus(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	return &model.ProjectModel{
		ID:               data.ID,
		UserID:           data.UserID,
		Title:            data.Title,
		Description:      data.Description,
		ThumbnailURL:     data.ThumbnailURL,
		ProjectType:      string(data.ProjectType),
		GenerationsCount: data.GenerationsCount,
		Status:           string(data.Status),
	}
}
