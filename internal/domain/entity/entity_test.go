package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from TaskStatus
		to   TaskStatus
		want bool
	}{
		{TaskStatusPending, TaskStatusProcessing, true},
		{TaskStatusPending, TaskStatusCompleted, false},
		{TaskStatusPending, TaskStatusFailed, false},
		{TaskStatusProcessing, TaskStatusCompleted, true},
		{TaskStatusProcessing, TaskStatusFailed, true},
		{TaskStatusProcessing, TaskStatusPending, true},
		{TaskStatusProcessing, TaskStatusProcessing, false},
		{TaskStatusCompleted, TaskStatusProcessing, false},
		{TaskStatusFailed, TaskStatusPending, false},
		{TaskStatusCompleted, TaskStatusFailed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAIAgent_GenerationSettings(t *testing.T) {
	tests := []struct {
		name            string
		config          map[string]any
		wantTemperature float32
		wantTempOK      bool
		wantMaxTokens   int
		wantMaxOK       bool
	}{
		{
			name:            "decoded from jsonb",
			config:          map[string]any{"temperature": json.Number("0.8"), "max_tokens": json.Number("512")},
			wantTemperature: 0.8,
			wantTempOK:      true,
			wantMaxTokens:   512,
			wantMaxOK:       true,
		},
		{
			name:            "go literals",
			config:          map[string]any{"temperature": 0.2, "max_tokens": 64},
			wantTemperature: 0.2,
			wantTempOK:      true,
			wantMaxTokens:   64,
			wantMaxOK:       true,
		},
		{
			name:   "unset",
			config: map[string]any{},
		},
		{
			name:   "not a number",
			config: map[string]any{"temperature": json.Number("warm"), "max_tokens": "512"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := &AIAgent{Config: tt.config}

			temperature, ok := agent.Temperature()
			assert.Equal(t, tt.wantTempOK, ok)
			assert.InDelta(t, tt.wantTemperature, temperature, 0.0001)

			maxTokens, ok := agent.MaxTokens()
			assert.Equal(t, tt.wantMaxOK, ok)
			assert.Equal(t, tt.wantMaxTokens, maxTokens)
		})
	}
}

func TestTaskStatus_IsTerminal(t *testing.T) {
	assert.True(t, TaskStatusCompleted.IsTerminal())
	assert.True(t, TaskStatusFailed.IsTerminal())
	assert.False(t, TaskStatusPending.IsTerminal())
	assert.False(t, TaskStatusProcessing.IsTerminal())
}

func TestNewPageRequest(t *testing.T) {
	assert.Equal(t, PageRequest{Page: 1, PageSize: DefaultPageSize}, NewPageRequest(0, 0))
	assert.Equal(t, PageRequest{Page: 3, PageSize: MaxPageSize}, NewPageRequest(3, 500))
	assert.Equal(t, 40, NewPageRequest(3, 20).Offset())
}

func TestPage_TotalPages(t *testing.T) {
	assert.Equal(t, 0, NewPage([]int{}, 0, NewPageRequest(1, 20)).TotalPages())
	assert.Equal(t, 1, NewPage([]int{1}, 20, NewPageRequest(1, 20)).TotalPages())
	assert.Equal(t, 3, NewPage([]int{1}, 41, NewPageRequest(1, 20)).TotalPages())
}

func TestAIAgent_ConfigAccessors(t *testing.T) {
	agent := &AIAgent{Config: map[string]any{
		AgentConfigSystemPrompt: "Write captions",
		AgentConfigTemperature:  0.4,
		AgentConfigMaxTokens:    float64(256),
	}}

	assert.Equal(t, "Write captions", agent.SystemPrompt())

	temp, ok := agent.Temperature()
	assert.True(t, ok)
	assert.InDelta(t, 0.4, temp, 0.0001)

	maxTokens, ok := agent.MaxTokens()
	assert.True(t, ok)
	assert.Equal(t, 256, maxTokens)

	empty := &AIAgent{}
	_, ok = empty.Temperature()
	assert.False(t, ok)
	assert.Empty(t, empty.SystemPrompt())
}

func TestAnalyticsMetrics_Negative(t *testing.T) {
	assert.Empty(t, AnalyticsMetrics{Likes: 3}.Negative())
	assert.Equal(t, []string{"followers", "reach"}, AnalyticsMetrics{Followers: -1, Reach: -2}.Negative())
}

func TestUser_Roles(t *testing.T) {
	assert.Equal(t, Roles{RoleUser}, (&User{}).Roles())
	assert.True(t, (&User{IsStaff: true}).Roles().Contains(RoleStaff))
}
