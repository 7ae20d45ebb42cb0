package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	raw, err := JSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/ai/agents/{task_type}/execute")
	assert.Contains(t, paths, "/api/users/auth/login")
}

func TestPages(t *testing.T) {
	assert.Contains(t, SwaggerUI(), "/swagger.json")
	assert.Contains(t, ReDoc(), "/swagger.json")
	assert.NotEmpty(t, YAML())
}
