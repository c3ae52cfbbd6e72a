// Package mcp maintains stdio MCP server sessions and exposes their tools to
// fiche runs. Each configured server is spawned as a child process; sessions
// that die are recreated on the next call.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oikos-sh/brigade/pkg/config"
	"github.com/oikos-sh/brigade/pkg/version"
)

const (
	initTimeout      = 30 * time.Second
	operationTimeout = 60 * time.Second
)

// Pool holds one session per configured MCP server.
type Pool struct {
	servers map[string]config.MCPServerConfig

	mu       sync.RWMutex
	sessions map[string]*mcpsdk.ClientSession
	failed   map[string]string

	toolsMu   sync.RWMutex
	toolCache map[string][]*mcpsdk.Tool

	// Per-server mutex so concurrent callers do not race to reconnect
	reconnectMu sync.Map
}

// NewPool creates a Pool for the configured servers. Call Connect before use.
func NewPool(servers []config.MCPServerConfig) *Pool {
	byName := make(map[string]config.MCPServerConfig, len(servers))
	for _, s := range servers {
		byName[s.Name] = s
	}
	return &Pool{
		servers:   byName,
		sessions:  make(map[string]*mcpsdk.ClientSession),
		failed:    make(map[string]string),
		toolCache: make(map[string][]*mcpsdk.Tool),
	}
}

// Connect establishes sessions to all configured servers. Servers that fail
// to connect are recorded and skipped; they retry lazily on first use.
func (p *Pool) Connect(ctx context.Context) {
	for name := range p.servers {
		if err := p.connectServer(ctx, name); err != nil {
			slog.Warn("MCP server failed to connect", "server", name, "error", err)
		}
	}
}

func (p *Pool) connectServer(ctx context.Context, name string) error {
	cfg, ok := p.servers[name]
	if !ok {
		return fmt.Errorf("unknown MCP server %q", name)
	}

	cmd := exec.Command(cfg.Command, cfg.Args...)
	env := os.Environ()
	for k, v := range cfg.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = env
	transport := &mcpsdk.CommandTransport{Command: cmd}

	initCtx, cancel := context.WithTimeout(ctx, initTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.Commit(),
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		if closer, ok := any(transport).(io.Closer); ok {
			_ = closer.Close()
		}
		p.mu.Lock()
		p.failed[name] = err.Error()
		p.mu.Unlock()
		return fmt.Errorf("failed to connect to MCP server %q: %w", name, err)
	}

	p.mu.Lock()
	p.sessions[name] = session
	delete(p.failed, name)
	p.mu.Unlock()

	slog.Info("MCP server connected", "server", name)
	return nil
}

// session returns the live session for a server, connecting if needed.
func (p *Pool) session(ctx context.Context, name string) (*mcpsdk.ClientSession, error) {
	p.mu.RLock()
	s, ok := p.sessions[name]
	p.mu.RUnlock()
	if ok {
		return s, nil
	}

	muAny, _ := p.reconnectMu.LoadOrStore(name, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	// Another caller may have reconnected while we waited
	p.mu.RLock()
	s, ok = p.sessions[name]
	p.mu.RUnlock()
	if ok {
		return s, nil
	}

	if err := p.connectServer(ctx, name); err != nil {
		return nil, err
	}
	p.mu.RLock()
	s = p.sessions[name]
	p.mu.RUnlock()
	return s, nil
}

// dropSession forgets a dead session so the next call reconnects.
func (p *Pool) dropSession(name string, s *mcpsdk.ClientSession) {
	p.mu.Lock()
	if p.sessions[name] == s {
		delete(p.sessions, name)
	}
	p.mu.Unlock()
	_ = s.Close()
}

// ListTools returns a server's tools, cached after the first call.
func (p *Pool) ListTools(ctx context.Context, name string) ([]*mcpsdk.Tool, error) {
	p.toolsMu.RLock()
	if cached, ok := p.toolCache[name]; ok {
		p.toolsMu.RUnlock()
		return cached, nil
	}
	p.toolsMu.RUnlock()

	s, err := p.session(ctx, name)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	result, err := s.ListTools(opCtx, nil)
	if err != nil {
		p.dropSession(name, s)
		return nil, fmt.Errorf("failed to list tools from %q: %w", name, err)
	}

	list := result.Tools
	if list == nil {
		list = []*mcpsdk.Tool{}
	}
	p.toolsMu.Lock()
	p.toolCache[name] = list
	p.toolsMu.Unlock()
	return list, nil
}

// CallTool executes one tool call, reconnecting and retrying once when the
// session has died.
func (p *Pool) CallTool(ctx context.Context, server, tool string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	result, err := p.callOnce(ctx, server, tool, args)
	if err == nil {
		return result, nil
	}

	slog.Warn("MCP tool call failed, reconnecting",
		"server", server, "tool", tool, "error", err)
	return p.callOnce(ctx, server, tool, args)
}

func (p *Pool) callOnce(ctx context.Context, server, tool string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	s, err := p.session(ctx, server)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	result, err := s.CallTool(opCtx, &mcpsdk.CallToolParams{
		Name:      tool,
		Arguments: args,
	})
	if err != nil {
		p.dropSession(server, s)
		return nil, fmt.Errorf("tool %s/%s failed: %w", server, tool, err)
	}
	return result, nil
}

// Failed returns servers that could not connect, with their last error.
func (p *Pool) Failed() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]string, len(p.failed))
	for k, v := range p.failed {
		out[k] = v
	}
	return out
}

// Close shuts down all sessions (and their child processes).
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for name, s := range p.sessions {
		if err := s.Close(); err != nil {
			slog.Warn("Failed to close MCP session", "server", name, "error", err)
		}
	}
	p.sessions = make(map[string]*mcpsdk.ClientSession)
}
