package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("BRIGADE_TEST_TOKEN", "tok-123")
	t.Setenv("BRIGADE_TEST_HOST", "db.internal")

	out := ExpandEnv([]byte(`{"token":"{{.BRIGADE_TEST_TOKEN}}","addr":"{{.BRIGADE_TEST_HOST}}:5432"}`))
	assert.Equal(t, `{"token":"tok-123","addr":"db.internal:5432"}`, string(out))

	// Missing variables expand to empty, not an error
	out = ExpandEnv([]byte(`{{.BRIGADE_TEST_UNSET_XYZ}}`))
	assert.Equal(t, "", string(out))

	// Shell-style $VAR is left alone
	out = ExpandEnv([]byte(`user_${USER_ID}_.*`))
	assert.Equal(t, `user_${USER_ID}_.*`, string(out))
}

func TestLoadMCPServers(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		t.Setenv("MCP_SERVERS", "")
		servers, err := LoadMCPServers()
		require.NoError(t, err)
		assert.Empty(t, servers)
	})

	t.Run("allowlisted", func(t *testing.T) {
		t.Setenv("MCP_SERVERS", `[{"name":"fs","command":"npx","args":["-y","@modelcontextprotocol/server-filesystem"]}]`)
		t.Setenv("MCP_COMMAND_ALLOWLIST", "npx, uvx")
		servers, err := LoadMCPServers()
		require.NoError(t, err)
		require.Len(t, servers, 1)
		assert.Equal(t, "fs", servers[0].Name)
		assert.Equal(t, []string{"-y", "@modelcontextprotocol/server-filesystem"}, servers[0].Args)
	})

	t.Run("command not allowlisted", func(t *testing.T) {
		t.Setenv("MCP_SERVERS", `[{"name":"sh","command":"bash"}]`)
		t.Setenv("MCP_COMMAND_ALLOWLIST", "npx")
		_, err := LoadMCPServers()
		require.ErrorContains(t, err, "not in MCP_COMMAND_ALLOWLIST")
	})

	t.Run("empty allowlist rejects everything", func(t *testing.T) {
		t.Setenv("MCP_SERVERS", `[{"name":"fs","command":"npx"}]`)
		t.Setenv("MCP_COMMAND_ALLOWLIST", "")
		_, err := LoadMCPServers()
		require.Error(t, err)
	})

	t.Run("env expansion in server env", func(t *testing.T) {
		t.Setenv("BRIGADE_TEST_GH", "ghp_secret")
		t.Setenv("MCP_SERVERS", `[{"name":"github","command":"npx","env":{"GITHUB_TOKEN":"{{.BRIGADE_TEST_GH}}"}}]`)
		t.Setenv("MCP_COMMAND_ALLOWLIST", "npx")
		servers, err := LoadMCPServers()
		require.NoError(t, err)
		require.Len(t, servers, 1)
		assert.Equal(t, "ghp_secret", servers[0].Env["GITHUB_TOKEN"])
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Setenv("MCP_SERVERS", `[{`)
		_, err := LoadMCPServers()
		require.ErrorContains(t, err, "invalid MCP_SERVERS JSON")
	})
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("MCP_SERVERS", "")

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("LLM_API_KEY", "sk-test")
		_, err := Load()
		require.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("missing llm key", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("LLM_API_KEY", "")
		_, err := Load()
		require.ErrorContains(t, err, "LLM_API_KEY")
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("LLM_API_KEY", "sk-test")
		t.Setenv("LISTEN_ADDR", "")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.Equal(t, "gpt-4o", cfg.LLM.DefaultModel)
		assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)
		assert.Equal(t, 5, cfg.Queue.MaxConcurrentJobs)
	})
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("BRIGADE_TEST_INT", "12")
	assert.Equal(t, 12, getEnvInt("BRIGADE_TEST_INT", 3))
	t.Setenv("BRIGADE_TEST_INT", "garbage")
	assert.Equal(t, 3, getEnvInt("BRIGADE_TEST_INT", 3))

	t.Setenv("BRIGADE_TEST_DUR", "250ms")
	assert.Equal(t, 250*time.Millisecond, getEnvDuration("BRIGADE_TEST_DUR", time.Second))
	t.Setenv("BRIGADE_TEST_DUR", "nope")
	assert.Equal(t, time.Second, getEnvDuration("BRIGADE_TEST_DUR", time.Second))
}
