package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/ent/threadmessage"
)

// recentContextMarker tags the synthetic system message carrying the
// recent-commis listing, so refreshes can find and replace it.
const recentContextMarker = "recent_commis_context"

// recentContextMinAge guards against pruning a context message that another
// in-flight run of the same thread wrote moments ago.
const recentContextMinAge = 5 * time.Second

// taskPreviewLen bounds task text in the context listing.
const taskPreviewLen = 80

// refreshRecentCommisContext replaces the thread's recent-commis system
// message with a fresh listing of the owner's latest jobs. Stale markers are
// pruned first; markers younger than recentContextMinAge are left alone.
func (r *FicheRunner) refreshRecentCommisContext(ctx context.Context, threadID, ownerID int) error {
	if r.recentLimit <= 0 {
		return nil
	}

	cutoff := time.Now().Add(-recentContextMinAge)
	_, err := r.db.ThreadMessage.Delete().
		Where(
			threadmessage.ThreadIDEQ(threadID),
			threadmessage.RoleEQ(threadmessage.RoleSystem),
			threadmessage.NameEQ(recentContextMarker),
			threadmessage.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to prune recent commis context: %w", err)
	}

	jobs, err := r.db.CommisJob.Query().
		Where(commisjob.OwnerIDEQ(ownerID)).
		Order(ent.Desc(commisjob.FieldCreatedAt)).
		Limit(r.recentLimit).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query recent commis jobs: %w", err)
	}
	if len(jobs) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("Recent commis jobs for this user (newest first):\n")
	for _, job := range jobs {
		task := job.Task
		if len(task) > taskPreviewLen {
			task = task[:taskPreviewLen] + "..."
		}
		fmt.Fprintf(&b, "- %s [%s] %s\n", job.CommisID, job.Status, task)
	}
	b.WriteString("Use get_commis_result or search_commis_artifacts to inspect them.")

	_, err = r.db.ThreadMessage.Create().
		SetThreadID(threadID).
		SetRole(threadmessage.RoleSystem).
		SetContent(b.String()).
		SetName(recentContextMarker).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to write recent commis context: %w", err)
	}
	return nil
}
