package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/pkg/artifact"
)

func TestRunRequiresRepoURL(t *testing.T) {
	store, err := artifact.NewStore(t.TempDir())
	require.NoError(t, err)
	r := NewRunner("hatch", store, t.TempDir())

	job := &ent.CommisJob{
		CommisID: "2026-01-01T00-00-00_test_abc123",
		Task:     "do something",
		Config:   map[string]interface{}{"mode": "workspace"},
	}
	_, err = r.Run(context.Background(), job)
	assert.ErrorContains(t, err, "repo_url")
}

func TestPrepareResumeStagesPriorSession(t *testing.T) {
	store, err := artifact.NewStore(t.TempDir())
	require.NoError(t, err)

	priorCommis := "2026-01-01T00-00-00_earlier-run_aaa111"
	_, err = store.Create("earlier run", nil, 0, priorCommis)
	require.NoError(t, err)
	transcript := `{"role":"user","content":"hello"}` + "\n"
	_, err = store.SaveArtifact(priorCommis, "session_sess-42.jsonl", transcript)
	require.NoError(t, err)

	r := NewRunner("hatch", store, t.TempDir())
	repoDir := t.TempDir()
	require.NoError(t, r.prepareResume(repoDir, "sess-42"))

	data, err := os.ReadFile(filepath.Join(repoDir, ".hatch", "sess-42.jsonl"))
	require.NoError(t, err)
	assert.Equal(t, transcript, string(data))
}

func TestPrepareResumeUnknownSession(t *testing.T) {
	store, err := artifact.NewStore(t.TempDir())
	require.NoError(t, err)
	r := NewRunner("hatch", store, t.TempDir())

	err = r.prepareResume(t.TempDir(), "never-shipped")
	assert.ErrorIs(t, err, artifact.ErrNotFound)

	err = r.prepareResume(t.TempDir(), "../../etc/passwd")
	assert.ErrorIs(t, err, artifact.ErrInvalidPath)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 100))

	long := strings.Repeat("a", 200)
	got := truncate(long, 100)
	assert.True(t, strings.HasSuffix(got, "... (truncated)"))
	assert.Len(t, got, 100+len("\n... (truncated)"))
}
