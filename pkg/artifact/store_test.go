package artifact

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Check disk usage", "check-disk-usage"},
		{"special chars stripped", "fix: DNS (prod)!", "fix-dns-prod"},
		{"underscores become dashes", "run_backup_job", "run-backup-job"},
		{"truncated to max", "a very long task description that keeps going", "a-very-long-task-description-t"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugify(tt.input, 30))
		})
	}
}

func TestGenerateCommisID(t *testing.T) {
	id := GenerateCommisID("Check disk usage on web-1")
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}_check-disk-usage-on-web-1_[0-9a-f]{6}$`, id)

	// Suffix keeps same-second ids distinct
	id2 := GenerateCommisID("Check disk usage on web-1")
	assert.NotEqual(t, id, id2)
}

func TestCreateAndLifecycle(t *testing.T) {
	s := newTestStore(t)

	commisID, err := s.Create("Check disk usage", map[string]interface{}{"model": "gpt-4o"}, 7, "")
	require.NoError(t, err)

	meta, err := s.GetMetadata(commisID, 0)
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, meta.Status)
	assert.Equal(t, "Check disk usage", meta.Task)
	assert.Equal(t, 7, meta.OwnerID())
	assert.Nil(t, meta.StartedAt)

	require.NoError(t, s.Start(commisID))
	meta, err = s.GetMetadata(commisID, 0)
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, meta.Status)
	require.NotNil(t, meta.StartedAt)

	require.NoError(t, s.SaveResult(commisID, "All disks below 80%"))
	require.NoError(t, s.Complete(commisID, StatusSuccess, ""))

	meta, err = s.GetMetadata(commisID, 0)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, meta.Status)
	require.NotNil(t, meta.FinishedAt)
	require.NotNil(t, meta.DurationMs)
	assert.Nil(t, meta.Error)

	result, err := s.GetResult(commisID)
	require.NoError(t, err)
	assert.Equal(t, "All disks below 80%", result)
}

func TestCompleteWithError(t *testing.T) {
	s := newTestStore(t)
	commisID, err := s.Create("Failing task", nil, 0, "")
	require.NoError(t, err)
	require.NoError(t, s.Start(commisID))
	require.NoError(t, s.Complete(commisID, StatusFailed, "ssh: connection refused"))

	meta, err := s.GetMetadata(commisID, 0)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, meta.Status)
	require.NotNil(t, meta.Error)
	assert.Equal(t, "ssh: connection refused", *meta.Error)
}

func TestCreateExplicitIDCollision(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create("task", nil, 0, "fixed-id")
	require.NoError(t, err)
	_, err = s.Create("task", nil, 0, "fixed-id")
	assert.ErrorContains(t, err, "already exists")
}

func TestGetMetadataOwnership(t *testing.T) {
	s := newTestStore(t)
	commisID, err := s.Create("owned task", nil, 42, "")
	require.NoError(t, err)

	// Owner and admin (ownerID 0) can read
	_, err = s.GetMetadata(commisID, 42)
	assert.NoError(t, err)
	_, err = s.GetMetadata(commisID, 0)
	assert.NoError(t, err)

	// Other users cannot
	_, err = s.GetMetadata(commisID, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSaveToolOutputNumbering(t *testing.T) {
	s := newTestStore(t)
	commisID, err := s.Create("tool task", nil, 0, "")
	require.NoError(t, err)

	rel, err := s.SaveToolOutput(commisID, "ssh_exec", "uptime output", 1)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("tool_calls", "001_ssh_exec.txt"), rel)

	rel, err = s.SaveToolOutput(commisID, "http_get", "{}", 12)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("tool_calls", "012_http_get.txt"), rel)

	content, err := s.ReadFile(commisID, "tool_calls/001_ssh_exec.txt")
	require.NoError(t, err)
	assert.Equal(t, "uptime output", content)
}

func TestReadFileRejectsTraversal(t *testing.T) {
	s := newTestStore(t)
	commisID, err := s.Create("task", nil, 0, "")
	require.NoError(t, err)

	for _, path := range []string{
		"../other/metadata.json",
		"tool_calls/../../secret",
		"/etc/passwd",
	} {
		_, err := s.ReadFile(commisID, path)
		assert.ErrorIs(t, err, ErrInvalidPath, "path %q should be rejected", path)
	}
}

func TestReadFileNotFound(t *testing.T) {
	s := newTestStore(t)
	commisID, err := s.Create("task", nil, 0, "")
	require.NoError(t, err)
	_, err = s.ReadFile(commisID, "missing.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFilters(t *testing.T) {
	s := newTestStore(t)

	id1, err := s.Create("first", nil, 1, "")
	require.NoError(t, err)
	id2, err := s.Create("second", nil, 2, "")
	require.NoError(t, err)
	require.NoError(t, s.Start(id2))
	require.NoError(t, s.Complete(id2, StatusSuccess, ""))

	all := s.List(ListOptions{})
	assert.Len(t, all, 2)

	byStatus := s.List(ListOptions{Status: StatusSuccess})
	require.Len(t, byStatus, 1)
	assert.Equal(t, id2, byStatus[0].CommisID)

	byOwner := s.List(ListOptions{OwnerID: 1})
	require.Len(t, byOwner, 1)
	assert.Equal(t, id1, byOwner[0].CommisID)

	future := time.Now().UTC().Add(time.Hour)
	assert.Empty(t, s.List(ListOptions{Since: &future}))

	limited := s.List(ListOptions{Limit: 1})
	assert.Len(t, limited, 1)
}

func TestUpdateSummary(t *testing.T) {
	s := newTestStore(t)
	commisID, err := s.Create("task", nil, 0, "")
	require.NoError(t, err)
	require.NoError(t, s.UpdateSummary(commisID, "short summary", map[string]interface{}{"model": "gpt-4o"}))

	meta, err := s.GetMetadata(commisID, 0)
	require.NoError(t, err)
	assert.Equal(t, "short summary", meta.Summary)

	entries := s.List(ListOptions{})
	require.Len(t, entries, 1)
	assert.Equal(t, "short summary", entries[0].Summary)
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)
	commisID, err := s.Create("disk check", nil, 0, "")
	require.NoError(t, err)
	require.NoError(t, s.SaveResult(commisID, "checked all mounts\ndisk usage at 45%\nall healthy\nno action needed"))
	_, err = s.SaveToolOutput(commisID, "ssh_exec", "/dev/sda1 45% /", 1)
	require.NoError(t, err)

	matches, err := s.Search(`45%`, "", nil)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, commisID, m.CommisID)
		assert.Contains(t, m.Content, "45%")
	}

	// Glob narrows to result.txt only; surrounding lines come along
	matches, err = s.Search(`45%`, "result.txt", nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "result.txt", matches[0].File)
	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, []string{"checked all mounts"}, matches[0].Before)
	assert.Equal(t, []string{"all healthy", "no action needed"}, matches[0].After)

	// A match on the first line has no before-context
	matches, err = s.Search(`checked`, "result.txt", nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Empty(t, matches[0].Before)
	assert.Equal(t, []string{"disk usage at 45%", "all healthy"}, matches[0].After)

	_, err = s.Search(`[invalid`, "", nil)
	assert.ErrorContains(t, err, "invalid search pattern")
}

func TestConcurrentIndexUpdates(t *testing.T) {
	s := newTestStore(t)

	var wg sync.WaitGroup
	ids := make([]string, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id, err := s.Create("concurrent task", nil, 0, "")
			assert.NoError(t, err)
			ids[n] = id
		}(i)
	}
	wg.Wait()

	entries := s.List(ListOptions{})
	assert.Len(t, entries, 10)
}
