package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oikos-sh/brigade/pkg/artifact"
)

type fakeTool struct{ name string }

func (f *fakeTool) Name() string                        { return f.name }
func (f *fakeTool) Description() string                 { return "fake" }
func (f *fakeTool) Parameters() map[string]interface{}  { return map[string]interface{}{"type": "object"} }
func (f *fakeTool) Execute(context.Context, *RunContext, map[string]interface{}) (string, error) {
	return OKEnvelope("done"), nil
}

func TestRegistrySelect(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeTool{name: "beta"})
	r.Register(&fakeTool{name: "alpha"})
	r.Register(&fakeTool{name: "gamma"})

	all := r.Select(nil)
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Name())

	subset := r.Select([]string{"gamma", "alpha", "unknown"})
	require.Len(t, subset, 2)
	assert.Equal(t, "alpha", subset[0].Name())
	assert.Equal(t, "gamma", subset[1].Name())

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, r.Names())
}

func TestRunContextSeq(t *testing.T) {
	rc := &RunContext{CourseID: 1}
	assert.Equal(t, 1, rc.NextSeq())
	assert.Equal(t, 2, rc.NextSeq())
}

func TestErrorEnvelope(t *testing.T) {
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(ErrorEnvelope("http_error", "boom")), &parsed))
	assert.Equal(t, false, parsed["ok"])
	errObj := parsed["error"].(map[string]interface{})
	assert.Equal(t, "http_error", errObj["type"])
	assert.Equal(t, "boom", errObj["message"])
}

func TestCurrentTimeTool(t *testing.T) {
	out, err := (&CurrentTimeTool{}).Execute(context.Background(), &RunContext{}, nil)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, true, parsed["ok"])
}

func TestHTTPGetToolRejectsBadURL(t *testing.T) {
	tool := NewHTTPGetTool()
	for _, raw := range []string{"", "ftp://host/file", "not-a-url"} {
		out, err := tool.Execute(context.Background(), &RunContext{}, map[string]interface{}{"url": raw})
		require.NoError(t, err)
		assert.Contains(t, out, "invalid_argument", "url %q", raw)
	}
}

type fakeSpawner struct {
	jobID    int
	commisID string
	err      error

	gotCourseID   int
	gotToolCallID string
	gotTask       string
	gotConfig     map[string]interface{}
}

func (f *fakeSpawner) SpawnCommis(_ context.Context, courseID, ownerID int, toolCallID, task string, config map[string]interface{}) (int, string, error) {
	f.gotCourseID = courseID
	f.gotToolCallID = toolCallID
	f.gotTask = task
	f.gotConfig = config
	return f.jobID, f.commisID, f.err
}

func TestSpawnCommisSuspends(t *testing.T) {
	spawner := &fakeSpawner{jobID: 42, commisID: "2026-08-24T10-00-00_check_abc123"}
	tool := NewSpawnCommisTool(spawner)
	rc := &RunContext{CourseID: 7, OwnerID: 3, ToolCallID: "call_1"}

	out, err := tool.Execute(context.Background(), rc, map[string]interface{}{"task": "check disk"})
	assert.Empty(t, out)

	var susp *Suspension
	require.ErrorAs(t, err, &susp)
	assert.Equal(t, 42, susp.JobID)
	assert.Equal(t, "call_1", susp.ToolCallID)
	assert.Equal(t, "check disk", spawner.gotTask)
	assert.Equal(t, 7, spawner.gotCourseID)
}

func TestSpawnCommisValidation(t *testing.T) {
	tool := NewSpawnCommisTool(&fakeSpawner{})
	rc := &RunContext{ToolCallID: "call_1"}

	out, err := tool.Execute(context.Background(), rc, map[string]interface{}{})
	require.NoError(t, err)
	assert.Contains(t, out, "task is required")

	out, err = tool.Execute(context.Background(), rc, map[string]interface{}{
		"task": "edit code", "mode": "workspace",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "repo_url is required")
}

func TestSpawnCommisSpawnerError(t *testing.T) {
	tool := NewSpawnCommisTool(&fakeSpawner{err: errors.New("db down")})
	_, err := tool.Execute(context.Background(), &RunContext{}, map[string]interface{}{"task": "x"})
	require.Error(t, err)
	var susp *Suspension
	assert.False(t, errors.As(err, &susp))
}

func TestArtifactToolsOwnership(t *testing.T) {
	store, err := artifact.NewStore(t.TempDir())
	require.NoError(t, err)

	commisID, err := store.Create("disk check", nil, 3, "")
	require.NoError(t, err)
	require.NoError(t, store.SaveResult(commisID, "all good"))

	get := NewGetCommisResultTool(store)

	out, err := get.Execute(context.Background(), &RunContext{OwnerID: 3}, map[string]interface{}{"commis_id": commisID})
	require.NoError(t, err)
	assert.Contains(t, out, "all good")

	out, err = get.Execute(context.Background(), &RunContext{OwnerID: 9}, map[string]interface{}{"commis_id": commisID})
	require.NoError(t, err)
	assert.Contains(t, out, "access_denied")

	list := NewListCommisTool(store)
	out, err = list.Execute(context.Background(), &RunContext{OwnerID: 9}, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true,"result":[]}`, out)
}
