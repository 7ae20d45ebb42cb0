package handler

import (
	"net/http"
	"testing"

	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	mockusecase "syncfloww/internal/mocks/usecase"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type aiFixtures struct {
	agentUC  *mockusecase.MockAgentUsecase
	configUC *mockusecase.MockAIConfigurationUsecase
}

func newAITestServer(t *testing.T, userID uuid.UUID, roles ...entity.Role) (*echo.Echo, aiFixtures) {
	f := aiFixtures{
		agentUC:  mockusecase.NewMockAgentUsecase(t),
		configUC: mockusecase.NewMockAIConfigurationUsecase(t),
	}
	h := NewAIHandler(AIHandlerParams{AgentUC: f.agentUC, ConfigUC: f.configUC, Logger: testLogger})

	e := newTestEcho()
	g := e.Group("/api/ai", asUser(userID, roles...))
	g.GET("/agents", h.ListAgents)
	g.GET("/agents/:id", h.GetAgent)
	g.POST("/agents/:task_type/execute", h.Execute)
	g.GET("/tasks", h.ListTasks)
	g.GET("/tasks/:id", h.GetTask)
	g.POST("/configurations", h.CreateConfiguration)
	g.PUT("/configurations/:id", h.UpdateConfiguration)

	return e, f
}

func TestAIHandler_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("task accepted", func(t *testing.T) {
		e, f := newAITestServer(t, userID)
		task := &entity.AgentTask{
			ID:          uuid.New(),
			AgentID:     uuid.New(),
			AgentName:   "Caption Writer",
			RequestedBy: &userID,
			InputData:   map[string]any{"prompt": "hello"},
			Status:      entity.TaskStatusPending,
		}
		f.agentUC.EXPECT().
			Execute(mock.Anything, userID, entity.TaskTypeCaption, map[string]any{"prompt": "hello"}).
			Return(task, nil)

		rec := doRequest(e, http.MethodPost, "/api/ai/agents/caption/execute/", `{"prompt":"hello"}`)

		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
		data := string(decodeEnvelope(t, rec).Data)
		assert.Contains(t, data, `"status":"pending"`)
		assert.Contains(t, data, `"output_data":null`)
	})

	t.Run("no agent for the type", func(t *testing.T) {
		e, f := newAITestServer(t, userID)
		f.agentUC.EXPECT().Execute(mock.Anything, userID, entity.TaskType("unknown"), map[string]any{}).
			Return(nil, domainerrors.ErrAgentNotFound)

		rec := doRequest(e, http.MethodPost, "/api/ai/agents/unknown/execute", `{}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Agent not found for this type", decodeEnvelope(t, rec).Error.Message)
	})

	t.Run("body must be an object", func(t *testing.T) {
		e, _ := newAITestServer(t, userID)

		rec := doRequest(e, http.MethodPost, "/api/ai/agents/caption/execute", `[1,2]`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAIHandler_GetAgent_NotFound(t *testing.T) {
	userID := uuid.New()

	t.Run("unknown id", func(t *testing.T) {
		e, f := newAITestServer(t, userID)
		id := uuid.New()
		f.agentUC.EXPECT().GetAgent(mock.Anything, id).Return(nil, domainerrors.ErrAgentIDNotFound)

		rec := doRequest(e, http.MethodGet, "/api/ai/agents/"+id.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "AGENT_NOT_FOUND", env.Error.Code)
		assert.Equal(t, "Agent not found", env.Error.Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		e, _ := newAITestServer(t, userID)

		rec := doRequest(e, http.MethodGet, "/api/ai/agents/abc", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Agent not found", decodeEnvelope(t, rec).Error.Message)
	})
}

func TestAIHandler_ListTasks(t *testing.T) {
	userID := uuid.New()
	empty := entity.NewPage([]*entity.AgentTask{}, 0, entity.NewPageRequest(1, 20))

	t.Run("staff asking for every task", func(t *testing.T) {
		e, f := newAITestServer(t, userID, entity.RoleStaff)
		f.agentUC.EXPECT().ListTasks(mock.Anything, &usecase.ListTasksInput{
			UserID:   userID,
			IsStaff:  true,
			AllUsers: true,
			Status:   entity.TaskStatusCompleted,
			Page:     entity.NewPageRequest(2, 5),
		}).Return(empty, nil)

		rec := doRequest(e, http.MethodGet, "/api/ai/tasks?scope=all&status=completed&page=2&page_size=5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.JSONEq(t, `[]`, string(env.Data))
		require.NotNil(t, env.Meta.Pagination)
	})

	t.Run("unknown status", func(t *testing.T) {
		e, _ := newAITestServer(t, userID)

		rec := doRequest(e, http.MethodGet, "/api/ai/tasks?status=done", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, decodeEnvelope(t, rec)), "status")
	})

	t.Run("malformed id", func(t *testing.T) {
		e, _ := newAITestServer(t, userID)

		rec := doRequest(e, http.MethodGet, "/api/ai/tasks/not-a-uuid", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAIHandler_Configurations(t *testing.T) {
	userID := uuid.New()

	t.Run("temperature out of range", func(t *testing.T) {
		e, _ := newAITestServer(t, userID)

		rec := doRequest(e, http.MethodPost, "/api/ai/configurations", `{"name":"n","model_name":"gpt-4o","temperature":3}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, decodeEnvelope(t, rec)), "temperature")
	})

	t.Run("put requires every required field", func(t *testing.T) {
		e, _ := newAITestServer(t, userID)

		rec := doRequest(e, http.MethodPut, "/api/ai/configurations/"+uuid.NewString(), `{"name":"n"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, decodeEnvelope(t, rec)), "model_name")
	})
}
