package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// MCPServerConfig defines one stdio MCP server the platform may spawn.
type MCPServerConfig struct {
	// Name identifies the server in tool routing.
	Name string `json:"name"`

	// Command is the executable; it must appear on the allowlist.
	Command string `json:"command"`

	Args []string          `json:"args,omitempty"`
	Env  map[string]string `json:"env,omitempty"`
}

// LoadMCPServers parses MCP_SERVERS (a JSON array of MCPServerConfig) and
// enforces the MCP_COMMAND_ALLOWLIST (comma-separated executables). An empty
// MCP_SERVERS yields no servers; an empty allowlist rejects every server.
func LoadMCPServers() ([]MCPServerConfig, error) {
	raw := os.Getenv("MCP_SERVERS")
	if raw == "" {
		return nil, nil
	}

	var servers []MCPServerConfig
	if err := json.Unmarshal(ExpandEnv([]byte(raw)), &servers); err != nil {
		return nil, fmt.Errorf("invalid MCP_SERVERS JSON: %w", err)
	}

	allowed := map[string]bool{}
	for _, cmd := range strings.Split(os.Getenv("MCP_COMMAND_ALLOWLIST"), ",") {
		if cmd = strings.TrimSpace(cmd); cmd != "" {
			allowed[cmd] = true
		}
	}

	for _, s := range servers {
		if s.Name == "" || s.Command == "" {
			return nil, fmt.Errorf("MCP server entry missing name or command")
		}
		if !allowed[s.Command] {
			return nil, fmt.Errorf("MCP command %q not in MCP_COMMAND_ALLOWLIST", s.Command)
		}
	}
	return servers, nil
}
