package agent

import (
	"strings"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/pkg/tools"
)

// buildSystemPrompt composes the per-turn system prompt from the fiche's
// instructions and the currently available tools. Built fresh every turn so
// instruction edits take effect mid-conversation.
func buildSystemPrompt(fiche *ent.Fiche, selected []tools.Tool) string {
	var b strings.Builder
	b.WriteString(fiche.SystemInstructions)

	if fiche.TaskInstructions != "" {
		b.WriteString("\n\n## Current task\n\n")
		b.WriteString(fiche.TaskInstructions)
	}

	if len(selected) > 0 {
		b.WriteString("\n\n## Available tools\n")
		canSpawn := false
		for _, t := range selected {
			b.WriteString("\n- ")
			b.WriteString(t.Name())
			b.WriteString(": ")
			b.WriteString(t.Description())
			if t.Name() == "spawn_commis" {
				canSpawn = true
			}
		}
		if canSpawn {
			b.WriteString("\n\nFor long-running or multi-step background work, prefer spawn_commis over doing everything inline.")
		}
	}

	return b.String()
}
