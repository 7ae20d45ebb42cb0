package handler

import (
	"log/slog"
	"net/http"
	"time"

	"syncfloww/internal/delivery/api/response"
	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ProjectHandlerParams struct {
	fx.In

	ProjectUC usecase.ProjectUsecase
	Logger    *slog.Logger
}

// ProjectHandler serves content projects of the caller.
type ProjectHandler struct {
	projectUC usecase.ProjectUsecase
	logger    *slog.Logger
}

func NewProjectHandler(params ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{
		projectUC: params.ProjectUC,
		logger:    params.Logger,
	}
}

type ListProjectsQuery struct {
	Status      string `query:"status" validate:"omitempty,oneof=draft in_progress completed"`
	ProjectType string `query:"project_type" validate:"omitempty,oneof=idea script production_package"`
	Search      string `query:"search"`
	Ordering    string `query:"ordering" validate:"omitempty,oneof=created_at -created_at updated_at -updated_at title -title"`
}

// CreateProjectRequest has no generations_count; the server always starts it at the default.
type CreateProjectRequest struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,max=500"`
	ProjectType  string `json:"project_type" validate:"required,oneof=idea script production_package"`
	Status       string `json:"status" validate:"omitempty,oneof=draft in_progress completed"`
}

type UpdateProjectRequest struct {
	Title            *string `json:"title" validate:"omitempty,max=255"`
	Description      *string `json:"description"`
	ThumbnailURL     *string `json:"thumbnail_url" validate:"omitempty,max=500"`
	ProjectType      *string `json:"project_type" validate:"omitempty,oneof=idea script production_package"`
	Status           *string `json:"status" validate:"omitempty,oneof=draft in_progress completed"`
	GenerationsCount *int    `json:"generations_count" validate:"omitempty,gte=0"`
}

type ProjectResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ThumbnailURL     string    `json:"thumbnail_url"`
	ProjectType      string    `json:"project_type"`
	GenerationsCount int       `json:"generations_count"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toProjectResponse(p *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		ThumbnailURL:     p.ThumbnailURL,
		ProjectType:      string(p.ProjectType),
		GenerationsCount: p.GenerationsCount,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var q ListProjectsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return response.HandleAppError(c, err)
	}

	projects, err := h.projectUC.List(c.Request().Context(), repository.ProjectFilter{
		UserID:      userID,
		Status:      entity.ProjectStatus(q.Status),
		ProjectType: entity.ProjectType(q.ProjectType),
		Search:      q.Search,
		Ordering:    q.Ordering,
		Page:        page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, projects, toProjectResponse)
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req CreateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	project, err := h.projectUC.Create(c.Request().Context(), userID, &usecase.CreateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		ProjectType:  entity.ProjectType(req.ProjectType),
		Status:       entity.ProjectStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProjectResponse(project))
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrProjectNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	project, err := h.projectUC.Get(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProjectResponse(project))
}

// UpdateProject serves PUT (title and project_type required) and PATCH.
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrProjectNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req UpdateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := requireOnPut(c, map[string]bool{
		"title":        req.Title != nil,
		"project_type": req.ProjectType != nil,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateProjectInput{
		Title:            req.Title,
		Description:      req.Description,
		ThumbnailURL:     req.ThumbnailURL,
		GenerationsCount: req.GenerationsCount,
	}
	if req.ProjectType != nil {
		pt := entity.ProjectType(*req.ProjectType)
		input.ProjectType = &pt
	}
	if req.Status != nil {
		st := entity.ProjectStatus(*req.Status)
		input.Status = &st
	}

	project, err := h.projectUC.Update(c.Request().Context(), userID, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProjectResponse(project))
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrProjectNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.projectUC.Delete(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
