// Package artifact provides filesystem persistence for commis outputs.
//
// Invariants:
//   - result.txt is canonical. Never deleted or auto-truncated.
//   - metadata.json contains derived views (summaries, extracted fields).
//   - Derived data must be recomputable from canonical artifacts.
//   - System decisions (status) never depend on LLM-generated summaries.
//
// Directory structure:
//
//	{root}/
//	├── index.json                    # Master index of all commis
//	└── {commis_id}/                  # "2026-08-24T14-32-00_disk-check_a1b2c3"
//	    ├── metadata.json             # Status, timestamps, task, config
//	    ├── result.txt                # Final natural language result
//	    ├── thread.jsonl              # Full conversation (messages)
//	    └── tool_calls/               # Raw tool outputs
//	        ├── 001_ssh_exec.txt
//	        └── ...
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors surfaced by readers.
var (
	ErrNotFound     = errors.New("commis not found")
	ErrAccessDenied = errors.New("access denied")
	ErrInvalidPath  = errors.New("invalid relative path")
)

// Commis statuses recorded in metadata.json.
const (
	StatusCreated = "created"
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusTimeout = "timeout"
)

// Metadata is the contents of a commis' metadata.json (and its index entry).
type Metadata struct {
	CommisID    string                 `json:"commis_id"`
	Task        string                 `json:"task"`
	Config      map[string]interface{} `json:"config"`
	Status      string                 `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
	StartedAt   *time.Time             `json:"started_at"`
	FinishedAt  *time.Time             `json:"finished_at"`
	DurationMs  *int64                 `json:"duration_ms"`
	Error       *string                `json:"error"`
	Summary     string                 `json:"summary,omitempty"`
	SummaryMeta map[string]interface{} `json:"summary_meta,omitempty"`
}

// OwnerID returns the owner recorded in the commis config, or 0 when the
// commis has no owner.
func (m *Metadata) OwnerID() int {
	if m.Config == nil {
		return 0
	}
	// JSON numbers decode as float64
	if f, ok := m.Config["owner_id"].(float64); ok {
		return int(f)
	}
	if n, ok := m.Config["owner_id"].(int); ok {
		return n
	}
	return 0
}

// Store manages filesystem storage for commis artifacts. Individual commis
// directories have a single writer (the dispatcher task owning that job), so
// only the shared index needs locking.
type Store struct {
	root      string
	indexPath string
}

// NewStore creates the artifact root (and an empty index) if needed.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact root %s: %w", root, err)
	}
	s := &Store{
		root:      root,
		indexPath: filepath.Join(root, "index.json"),
	}
	if _, err := os.Stat(s.indexPath); errors.Is(err, os.ErrNotExist) {
		if err := s.writeIndexLocked(nil); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Root returns the artifact root directory.
func (s *Store) Root() string {
	return s.root
}

// Dir returns the directory for a commis.
func (s *Store) Dir(commisID string) string {
	return filepath.Join(s.root, commisID)
}

var (
	slugSpaces   = regexp.MustCompile(`[\s_]+`)
	slugInvalid  = regexp.MustCompile(`[^a-z0-9\-]`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// slugify converts a task description to a filesystem-safe kebab-case slug,
// truncated to maxLen.
func slugify(text string, maxLen int) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = slugSpaces.ReplaceAllString(slug, "-")
	slug = slugInvalid.ReplaceAllString(slug, "")
	slug = strings.Trim(slugCollapse.ReplaceAllString(slug, "-"), "-")
	if len(slug) > maxLen {
		slug = slug[:maxLen]
	}
	return slug
}

// GenerateCommisID builds a unique commis id: "{timestamp}_{slug}_{6hex}".
func GenerateCommisID(task string) string {
	ts := time.Now().UTC().Format("2006-01-02T15-04-05")
	return fmt.Sprintf("%s_%s_%s", ts, slugify(task, 30), uuid.New().String()[:6])
}

// Create builds a new commis directory structure and registers it in the
// index. When commisID is empty one is generated from the task.
func (s *Store) Create(task string, config map[string]interface{}, ownerID int, commisID string) (string, error) {
	if commisID == "" {
		commisID = GenerateCommisID(task)
	}
	dir := s.Dir(commisID)

	if _, err := os.Stat(dir); err == nil {
		return "", fmt.Errorf("commis directory already exists: %s", commisID)
	}
	if err := os.MkdirAll(filepath.Join(dir, "tool_calls"), 0o755); err != nil {
		return "", fmt.Errorf("failed to create commis directory: %w", err)
	}

	if config == nil {
		config = map[string]interface{}{}
	}
	if ownerID != 0 {
		config["owner_id"] = ownerID
	}

	meta := &Metadata{
		CommisID:  commisID,
		Task:      task,
		Config:    config,
		Status:    StatusCreated,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.writeMetadata(commisID, meta); err != nil {
		return "", err
	}
	if err := s.updateIndex(commisID, meta); err != nil {
		return "", err
	}

	slog.Info("Created commis directory", "commis_id", commisID)
	return commisID, nil
}

// Start marks a commis as running and stamps started_at.
func (s *Store) Start(commisID string) error {
	meta, err := s.readMetadata(commisID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	meta.Status = StatusRunning
	meta.StartedAt = &now

	if err := s.writeMetadata(commisID, meta); err != nil {
		return err
	}
	return s.updateIndex(commisID, meta)
}

// Complete marks a commis terminal and computes duration_ms.
func (s *Store) Complete(commisID, status string, errMsg string) error {
	meta, err := s.readMetadata(commisID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	meta.Status = status
	meta.FinishedAt = &now
	if errMsg != "" {
		meta.Error = &errMsg
	} else {
		meta.Error = nil
	}
	if meta.StartedAt != nil {
		d := now.Sub(*meta.StartedAt).Milliseconds()
		meta.DurationMs = &d
	}

	if err := s.writeMetadata(commisID, meta); err != nil {
		return err
	}
	if err := s.updateIndex(commisID, meta); err != nil {
		return err
	}
	slog.Info("Completed commis", "commis_id", commisID, "status", status)
	return nil
}

// SaveMessage appends a message to the commis' thread.jsonl.
func (s *Store) SaveMessage(commisID string, message map[string]interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(s.Dir(commisID), "thread.jsonl"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open thread log: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// SaveToolOutput writes one tool's output, numbered in call order.
// Returns the relative path, e.g. "tool_calls/001_ssh_exec.txt".
func (s *Store) SaveToolOutput(commisID, toolName, output string, sequence int) (string, error) {
	filename := fmt.Sprintf("%03d_%s.txt", sequence, toolName)
	rel := filepath.Join("tool_calls", filename)
	if err := os.WriteFile(filepath.Join(s.Dir(commisID), rel), []byte(output), 0o644); err != nil {
		return "", fmt.Errorf("failed to write tool output: %w", err)
	}
	return rel, nil
}

// SaveResult writes the canonical result.txt.
func (s *Store) SaveResult(commisID, result string) error {
	if err := os.WriteFile(filepath.Join(s.Dir(commisID), "result.txt"), []byte(result), 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	slog.Info("Saved commis result", "commis_id", commisID)
	return nil
}

// SaveArtifact writes an arbitrary artifact file (e.g. "diff.patch").
// Parent directories are created for nested names.
func (s *Store) SaveArtifact(commisID, filename, content string) (string, error) {
	path := filepath.Join(s.Dir(commisID), filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", filename, err)
	}
	return path, nil
}

// UpdateSummary records an extracted summary on a completed commis. Summary
// is derived data; callers treat failure as non-fatal.
func (s *Store) UpdateSummary(commisID, summary string, summaryMeta map[string]interface{}) error {
	meta, err := s.readMetadata(commisID)
	if err != nil {
		return err
	}
	meta.Summary = summary
	meta.SummaryMeta = summaryMeta
	if err := s.writeMetadata(commisID, meta); err != nil {
		return err
	}
	return s.updateIndexEntry(commisID, func(entry *Metadata) {
		entry.Summary = summary
	})
}

// GetMetadata reads a commis' metadata. When ownerID is non-zero and the
// commis records a different owner, access is denied.
func (s *Store) GetMetadata(commisID string, ownerID int) (*Metadata, error) {
	meta, err := s.readMetadata(commisID)
	if err != nil {
		return nil, err
	}
	if ownerID != 0 {
		if owner := meta.OwnerID(); owner != 0 && owner != ownerID {
			return nil, fmt.Errorf("%w: commis %s", ErrAccessDenied, commisID)
		}
	}
	return meta, nil
}

// GetResult reads the canonical result.txt.
func (s *Store) GetResult(commisID string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir(commisID), "result.txt"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: no result for %s", ErrNotFound, commisID)
		}
		return "", fmt.Errorf("failed to read result: %w", err)
	}
	return string(data), nil
}

// ReadFile reads any file within a commis directory by relative path.
// Traversal segments and paths resolving outside the commis directory are
// rejected.
func (s *Store) ReadFile(commisID, relativePath string) (string, error) {
	if strings.Contains(relativePath, "..") || strings.HasPrefix(relativePath, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, relativePath)
	}

	dir := s.Dir(commisID)
	path := filepath.Join(dir, relativePath)

	// Re-check after cleaning: filepath.Join collapses the path, so a crafted
	// name that escapes the directory no longer shares its prefix.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve commis directory: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve file path: %w", err)
	}
	if absPath != absDir && !strings.HasPrefix(absPath, absDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: path escapes commis directory", ErrInvalidPath)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s/%s", ErrNotFound, commisID, relativePath)
		}
		return "", fmt.Errorf("failed to read %s: %w", relativePath, err)
	}
	return string(data), nil
}

// sessionIDPattern guards session ids used as filenames. Anything else would
// let a crafted id walk out of the commis directory.
var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FindSessionLog locates a shipped hatch session transcript by session id,
// scanning commis newest first. Returns ErrNotFound when no commis shipped
// that session.
func (s *Store) FindSessionLog(sessionID string) (string, error) {
	if !sessionIDPattern.MatchString(sessionID) {
		return "", fmt.Errorf("%w: session id %q", ErrInvalidPath, sessionID)
	}
	name := "session_" + sessionID + ".jsonl"
	for _, entry := range s.List(ListOptions{}) {
		data, err := os.ReadFile(filepath.Join(s.Dir(entry.CommisID), name))
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to read session %s: %w", sessionID, err)
		}
	}
	return "", fmt.Errorf("%w: no shipped session %s", ErrNotFound, sessionID)
}

func (s *Store) metadataPath(commisID string) string {
	return filepath.Join(s.Dir(commisID), "metadata.json")
}

func (s *Store) readMetadata(commisID string) (*Metadata, error) {
	data, err := os.ReadFile(s.metadataPath(commisID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, commisID)
		}
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("corrupt metadata for %s: %w", commisID, err)
	}
	return &meta, nil
}

func (s *Store) writeMetadata(commisID string, meta *Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(s.metadataPath(commisID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	return nil
}
