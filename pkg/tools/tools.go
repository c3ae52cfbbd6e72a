// Package tools provides the tool registry and builtin tools exposed to
// fiche runs. Tool failures are returned to the model as structured error
// envelopes; they never abort the run.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// RunContext carries per-run identity through tool execution. Seq numbers
// tool calls within the run for artifact file naming.
type RunContext struct {
	CourseID int
	OwnerID  int
	ThreadID int

	// ToolCallID is the model-assigned id of the tool call currently being
	// executed. The runner sets it before each Execute; tools that suspend
	// record it so the resume path can answer the right call.
	ToolCallID string

	seq atomic.Int64
}

// NextSeq returns the next tool call sequence number for this run, starting
// at 1.
func (rc *RunContext) NextSeq() int {
	return int(rc.seq.Add(1))
}

// Suspension signals that a tool call suspended the run instead of producing
// an output. The runner parks the course as waiting and records which tool
// call the eventual resume must answer.
type Suspension struct {
	JobID      int
	CommisID   string
	ToolCallID string
}

func (s *Suspension) Error() string {
	return fmt.Sprintf("run suspended on commis job %d (%s)", s.JobID, s.CommisID)
}

// Tool is one callable tool. Parameters returns a JSON Schema object
// describing the arguments.
type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]interface{}
	Execute(ctx context.Context, rc *RunContext, args map[string]interface{}) (string, error)
}

// Registry holds the available tools. Fiches select a subset via their
// allowed_tools list; an empty list means all registered tools.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool, replacing any previous tool of the same name.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Select returns the tools a fiche may call, sorted by name for stable
// prompt ordering. Unknown names in allowed are ignored.
func (r *Registry) Select(allowed []string) []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Tool
	if len(allowed) == 0 {
		for _, t := range r.tools {
			out = append(out, t)
		}
	} else {
		for _, name := range allowed {
			if t, ok := r.tools[name]; ok {
				out = append(out, t)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrorEnvelope renders a tool failure as the JSON envelope returned to the
// model: {"ok": false, "error": {"type": ..., "message": ...}}.
func ErrorEnvelope(errType, message string) string {
	data, _ := json.Marshal(map[string]interface{}{
		"ok": false,
		"error": map[string]string{
			"type":    errType,
			"message": message,
		},
	})
	return string(data)
}

// OKEnvelope renders a successful structured tool result.
func OKEnvelope(result interface{}) string {
	data, err := json.Marshal(map[string]interface{}{
		"ok":     true,
		"result": result,
	})
	if err != nil {
		return ErrorEnvelope("serialization_error", err.Error())
	}
	return string(data)
}
