package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oikos-sh/brigade/pkg/tools"
)

// serverTool adapts one MCP tool into the platform registry. Registered under
// "{server}_{tool}" so names stay unique across servers.
type serverTool struct {
	pool        *Pool
	server      string
	tool        string
	description string
	schema      map[string]interface{}
}

func (t *serverTool) Name() string {
	return t.server + "_" + t.tool
}

func (t *serverTool) Description() string {
	if t.description == "" {
		return fmt.Sprintf("Tool %s on MCP server %s", t.tool, t.server)
	}
	return t.description
}

func (t *serverTool) Parameters() map[string]interface{} {
	if t.schema == nil {
		return map[string]interface{}{"type": "object"}
	}
	return t.schema
}

func (t *serverTool) Execute(ctx context.Context, _ *tools.RunContext, args map[string]interface{}) (string, error) {
	result, err := t.pool.CallTool(ctx, t.server, t.tool, args)
	if err != nil {
		return tools.ErrorEnvelope("mcp_error", err.Error()), nil
	}
	text := extractText(result)
	if result.IsError {
		return tools.ErrorEnvelope("tool_error", text), nil
	}
	return text, nil
}

// RegisterTools discovers every connected server's tools and registers them.
// Servers that fail to list are skipped with a warning.
func RegisterTools(ctx context.Context, pool *Pool, registry *tools.Registry) {
	for name := range pool.servers {
		list, err := pool.ListTools(ctx, name)
		if err != nil {
			slog.Warn("Skipping MCP server tools", "server", name, "error", err)
			continue
		}
		for _, t := range list {
			registry.Register(&serverTool{
				pool:        pool,
				server:      name,
				tool:        t.Name,
				description: t.Description,
				schema:      schemaToMap(t.InputSchema),
			})
		}
		slog.Info("Registered MCP tools", "server", name, "count", len(list))
	}
}

// schemaToMap converts the SDK's schema type to the generic JSON Schema map
// the registry exposes to the model.
func schemaToMap(schema any) map[string]interface{} {
	if schema == nil {
		return nil
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

// extractText concatenates the text content blocks of a tool result.
func extractText(result *mcpsdk.CallToolResult) string {
	var b strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			b.WriteString(tc.Text)
		}
	}
	return b.String()
}
