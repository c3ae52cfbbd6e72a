// Package workspace executes workspace-mode commis jobs: clone a git
// repository into a scratch directory, run the external agent binary against
// the task, and capture the resulting diff as artifacts.
package workspace

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/pkg/artifact"
)

// outputLimit bounds how much subprocess output is kept in the result.
const outputLimit = 64 * 1024

// Runner implements dispatch.WorkspaceRunner with git and the configured
// hatch binary.
type Runner struct {
	hatchBinary string
	artifacts   *artifact.Store
	scratchRoot string
}

// NewRunner creates a workspace Runner. scratchRoot holds per-job clone
// directories; they are removed after each run.
func NewRunner(hatchBinary string, store *artifact.Store, scratchRoot string) *Runner {
	return &Runner{
		hatchBinary: hatchBinary,
		artifacts:   store,
		scratchRoot: scratchRoot,
	}
}

// Run executes one workspace-mode job: clone, hatch, diff. The returned
// result is what the concierge relays to the user.
func (r *Runner) Run(ctx context.Context, job *ent.CommisJob) (string, error) {
	repoURL, _ := job.Config["repo_url"].(string)
	if repoURL == "" {
		return "", fmt.Errorf("workspace mode requires repo_url in job config")
	}
	branch, _ := job.Config["branch"].(string)

	workDir, err := os.MkdirTemp(r.scratchRoot, "ws-")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			slog.Warn("Failed to remove workspace directory", "dir", workDir, "error", err)
		}
	}()

	repoDir := filepath.Join(workDir, "repo")
	if err := r.clone(ctx, repoURL, branch, repoDir); err != nil {
		return "", err
	}

	// A prior session transcript, when requested and available, is staged
	// where hatch looks for resumable sessions. Failure to stage means the
	// job runs as a fresh session.
	resumeID, _ := job.Config["resume_session_id"].(string)
	if resumeID != "" {
		if err := r.prepareResume(repoDir, resumeID); err != nil {
			slog.Warn("Failed to prepare session for resume, starting fresh",
				"commis_id", job.CommisID, "session_id", resumeID, "error", err)
			resumeID = ""
		}
	}

	output, hatchErr := r.runHatch(ctx, repoDir, job.Task, resumeID)
	if _, serr := r.artifacts.SaveArtifact(job.CommisID, "hatch_output.txt", output); serr != nil {
		slog.Warn("Failed to save hatch output", "commis_id", job.CommisID, "error", serr)
	}
	r.shipSessionLogs(job.CommisID, repoDir)

	diff, diffErr := r.captureDiff(ctx, repoDir)
	if diffErr != nil {
		slog.Warn("Failed to capture workspace diff",
			"commis_id", job.CommisID, "error", diffErr)
	} else if diff != "" {
		if _, serr := r.artifacts.SaveArtifact(job.CommisID, "changes.patch", diff); serr != nil {
			slog.Warn("Failed to save workspace diff", "commis_id", job.CommisID, "error", serr)
		}
	}

	if hatchErr != nil {
		return "", fmt.Errorf("hatch run failed: %w\n\noutput:\n%s", hatchErr, truncate(output, outputLimit))
	}

	var b strings.Builder
	b.WriteString(truncate(output, outputLimit))
	if diff != "" {
		fmt.Fprintf(&b, "\n\n## Changes\n\n```diff\n%s\n```\n", truncate(diff, outputLimit))
	} else {
		b.WriteString("\n\nNo repository changes were made.\n")
	}
	return b.String(), nil
}

// clone performs a shallow clone; workspace jobs never need history.
func (r *Runner) clone(ctx context.Context, repoURL, branch, dest string) error {
	args := []string{"clone", "--depth", "1"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, repoURL, dest)

	cmd := exec.CommandContext(ctx, "git", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git clone failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// prepareResume fetches a previously shipped session transcript and writes
// it under .hatch/ in the clone, where the hatch binary finds resumable
// sessions.
func (r *Runner) prepareResume(repoDir, sessionID string) error {
	transcript, err := r.artifacts.FindSessionLog(sessionID)
	if err != nil {
		return err
	}
	sessionDir := filepath.Join(repoDir, ".hatch")
	if err := os.MkdirAll(sessionDir, 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	path := filepath.Join(sessionDir, sessionID+".jsonl")
	if err := os.WriteFile(path, []byte(transcript), 0o644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	slog.Info("Staged session for resume", "session_id", sessionID, "path", path)
	return nil
}

// runHatch invokes the external agent binary in the cloned repository. The
// task goes in on stdin; combined output comes back.
func (r *Runner) runHatch(ctx context.Context, repoDir, task, resumeID string) (string, error) {
	args := []string{"--print"}
	if resumeID != "" {
		args = append(args, "--resume", resumeID)
	}
	cmd := exec.CommandContext(ctx, r.hatchBinary, args...)
	cmd.Dir = repoDir
	cmd.Stdin = strings.NewReader(task)

	out, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return string(out), fmt.Errorf("hatch killed: %w", ctx.Err())
	}
	return string(out), err
}

// captureDiff returns the repository's working-tree diff, including
// newly added files.
func (r *Runner) captureDiff(ctx context.Context, repoDir string) (string, error) {
	add := exec.CommandContext(ctx, "git", "add", "-A", "-N")
	add.Dir = repoDir
	if err := add.Run(); err != nil {
		return "", fmt.Errorf("git add failed: %w", err)
	}

	cmd := exec.CommandContext(ctx, "git", "diff")
	cmd.Dir = repoDir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git diff failed: %w", err)
	}
	return string(out), nil
}

// shipSessionLogs copies any session JSONL files the hatch binary left under
// .hatch/ into the artifact directory. Best-effort.
func (r *Runner) shipSessionLogs(commisID, repoDir string) {
	matches, err := filepath.Glob(filepath.Join(repoDir, ".hatch", "*.jsonl"))
	if err != nil || len(matches) == 0 {
		return
	}
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("Failed to read hatch session log", "path", path, "error", err)
			continue
		}
		name := "session_" + filepath.Base(path)
		if _, err := r.artifacts.SaveArtifact(commisID, name, string(data)); err != nil {
			slog.Warn("Failed to save hatch session log",
				"commis_id", commisID, "name", name, "error", err)
		}
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "\n... (truncated)"
}
