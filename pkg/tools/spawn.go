package tools

import (
	"context"
	"fmt"
)

// CommisSpawner enqueues a commis job for a suspended concierge course.
// Implemented by services.ConciergeService.
type CommisSpawner interface {
	SpawnCommis(ctx context.Context, courseID, ownerID int, toolCallID, task string, config map[string]interface{}) (jobID int, commisID string, err error)
}

// SpawnCommisTool hands a task off to a background commis job. Unlike every
// other tool it does not produce an output for the model: it enqueues the job
// and suspends the run. The tool message answering this call is written later
// by the resume path, carrying the commis result.
type SpawnCommisTool struct {
	spawner CommisSpawner
}

func NewSpawnCommisTool(spawner CommisSpawner) *SpawnCommisTool {
	return &SpawnCommisTool{spawner: spawner}
}

func (t *SpawnCommisTool) Name() string { return "spawn_commis" }

func (t *SpawnCommisTool) Description() string {
	return "Delegate a task to a background commis worker. The conversation pauses until the commis finishes; its result is delivered back to you automatically."
}

func (t *SpawnCommisTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task": map[string]interface{}{
				"type":        "string",
				"description": "Complete, self-contained task description for the commis",
			},
			"mode": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"standard", "workspace"},
				"description": "standard runs tools in-process; workspace clones a git repo and runs the hatch agent",
			},
			"repo_url": map[string]interface{}{
				"type":        "string",
				"description": "Git repository URL (workspace mode only)",
			},
			"branch": map[string]interface{}{
				"type":        "string",
				"description": "Git branch to check out (workspace mode only)",
			},
		},
		"required": []string{"task"},
	}
}

func (t *SpawnCommisTool) Execute(ctx context.Context, rc *RunContext, args map[string]interface{}) (string, error) {
	task, _ := args["task"].(string)
	if task == "" {
		return ErrorEnvelope("invalid_argument", "task is required"), nil
	}

	config := map[string]interface{}{}
	for _, key := range []string{"mode", "repo_url", "branch"} {
		if v, ok := args[key].(string); ok && v != "" {
			config[key] = v
		}
	}
	if mode, _ := config["mode"].(string); mode == "workspace" {
		if _, ok := config["repo_url"].(string); !ok {
			return ErrorEnvelope("invalid_argument", "repo_url is required for workspace mode"), nil
		}
	}

	jobID, commisID, err := t.spawner.SpawnCommis(ctx, rc.CourseID, rc.OwnerID, rc.ToolCallID, task, config)
	if err != nil {
		return "", fmt.Errorf("failed to spawn commis: %w", err)
	}

	return "", &Suspension{
		JobID:      jobID,
		CommisID:   commisID,
		ToolCallID: rc.ToolCallID,
	}
}
