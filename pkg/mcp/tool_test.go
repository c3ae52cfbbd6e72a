package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerToolNaming(t *testing.T) {
	tool := &serverTool{server: "github", tool: "search_issues"}
	assert.Equal(t, "github_search_issues", tool.Name())
	assert.Contains(t, tool.Description(), "search_issues")

	tool.description = "Search issues in a repository"
	assert.Equal(t, "Search issues in a repository", tool.Description())
}

func TestServerToolParametersDefault(t *testing.T) {
	tool := &serverTool{server: "s", tool: "t"}
	assert.Equal(t, map[string]interface{}{"type": "object"}, tool.Parameters())

	tool.schema = map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{"q": map[string]interface{}{"type": "string"}},
	}
	assert.Equal(t, "object", tool.Parameters()["type"])
	assert.Contains(t, tool.Parameters(), "properties")
}

func TestSchemaToMap(t *testing.T) {
	assert.Nil(t, schemaToMap(nil))

	got := schemaToMap(map[string]any{"type": "object", "required": []string{"q"}})
	assert.Equal(t, "object", got["type"])
}
