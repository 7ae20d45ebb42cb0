package handler

import (
	"net/http"
	"testing"

	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	mockusecase "syncfloww/internal/mocks/usecase"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProjectTestServer(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockusecase.MockProjectUsecase) {
	projectUC := mockusecase.NewMockProjectUsecase(t)
	h := NewProjectHandler(ProjectHandlerParams{ProjectUC: projectUC, Logger: testLogger})

	e := newTestEcho()
	g := e.Group("/api/projects", asUser(userID))
	g.GET("", h.ListProjects)
	g.POST("", h.CreateProject)
	g.GET("/:id", h.GetProject)
	g.PUT("/:id", h.UpdateProject)
	g.PATCH("/:id", h.UpdateProject)
	g.DELETE("/:id", h.DeleteProject)

	return e, projectUC
}

func TestProjectHandler_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("generations_count is ignored", func(t *testing.T) {
		e, projectUC := newProjectTestServer(t, userID)
		projectUC.EXPECT().Create(mock.Anything, userID, &usecase.CreateProjectInput{
			Title:       "Launch",
			ProjectType: entity.ProjectType("idea"),
		}).Return(&entity.Project{ID: uuid.New(), Title: "Launch", ProjectType: "idea", Status: "draft"}, nil)

		rec := doRequest(e, http.MethodPost, "/api/projects/",
			`{"title":"Launch","project_type":"idea","generations_count":99}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"generations_count":0`)
	})

	t.Run("unknown project type", func(t *testing.T) {
		e, _ := newProjectTestServer(t, userID)

		rec := doRequest(e, http.MethodPost, "/api/projects", `{"title":"Launch","project_type":"movie"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, decodeEnvelope(t, rec)), "project_type")
	})
}

func TestProjectHandler_List(t *testing.T) {
	userID := uuid.New()

	t.Run("filters and ordering", func(t *testing.T) {
		e, projectUC := newProjectTestServer(t, userID)
		projectUC.EXPECT().List(mock.Anything, repository.ProjectFilter{
			UserID:   userID,
			Status:   entity.ProjectStatus("draft"),
			Search:   "launch",
			Ordering: "-title",
			Page:     entity.NewPageRequest(1, 100),
		}).Return(entity.NewPage([]*entity.Project{}, 0, entity.NewPageRequest(1, 100)), nil)

		rec := doRequest(e, http.MethodGet, "/api/projects?status=draft&search=launch&ordering=-title&page_size=500", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Meta.Pagination)
		assert.Equal(t, 100, env.Meta.Pagination.PageSize)
	})

	t.Run("invalid ordering", func(t *testing.T) {
		e, _ := newProjectTestServer(t, userID)

		rec := doRequest(e, http.MethodGet, "/api/projects?ordering=secret", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non numeric page", func(t *testing.T) {
		e, _ := newProjectTestServer(t, userID)

		rec := doRequest(e, http.MethodGet, "/api/projects?page=two", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, decodeEnvelope(t, rec)), "page")
	})
}

func TestProjectHandler_Update(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	t.Run("put requires title and project_type", func(t *testing.T) {
		e, _ := newProjectTestServer(t, userID)

		rec := doRequest(e, http.MethodPut, "/api/projects/"+id.String(), `{"description":"d"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldDetails(t, decodeEnvelope(t, rec))
		assert.Contains(t, fields, "title")
		assert.Contains(t, fields, "project_type")
	})

	t.Run("patch sets generations_count", func(t *testing.T) {
		e, projectUC := newProjectTestServer(t, userID)
		count := 3
		projectUC.EXPECT().Update(mock.Anything, userID, id, &usecase.UpdateProjectInput{GenerationsCount: &count}).
			Return(&entity.Project{ID: id, GenerationsCount: 3}, nil)

		rec := doRequest(e, http.MethodPatch, "/api/projects/"+id.String(), `{"generations_count":3}`)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("negative generations_count", func(t *testing.T) {
		e, _ := newProjectTestServer(t, userID)

		rec := doRequest(e, http.MethodPatch, "/api/projects/"+id.String(), `{"generations_count":-1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProjectHandler_GetAndDelete(t *testing.T) {
	userID := uuid.New()

	t.Run("malformed id never reaches the usecase", func(t *testing.T) {
		e, _ := newProjectTestServer(t, userID)

		rec := doRequest(e, http.MethodGet, "/api/projects/123", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PROJECT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("foreign project", func(t *testing.T) {
		e, projectUC := newProjectTestServer(t, userID)
		id := uuid.New()
		projectUC.EXPECT().Get(mock.Anything, userID, id).Return(nil, domainerrors.ErrProjectNotFound)

		rec := doRequest(e, http.MethodGet, "/api/projects/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		e, projectUC := newProjectTestServer(t, userID)
		id := uuid.New()
		projectUC.EXPECT().Delete(mock.Anything, userID, id).Return(nil)

		rec := doRequest(e, http.MethodDelete, "/api/projects/"+id.String(), "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unexpected failure is hidden", func(t *testing.T) {
		e, projectUC := newProjectTestServer(t, userID)
		id := uuid.New()
		projectUC.EXPECT().Delete(mock.Anything, userID, id).Return(domainerrors.NewDatabaseExecuteError(assert.AnError, "delete"))

		rec := doRequest(e, http.MethodDelete, "/api/projects/"+id.String(), "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error, please try again later", decodeEnvelope(t, rec).Error.Message)
		assert.NotContains(t, rec.Body.String(), "assert.AnError")
	})
}
