package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes that Ent cannot
// express in schema definitions.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one non-terminal deployment may exist globally. Enforced at the
	// database so two concurrent creators cannot both win.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS deployments_single_live
		ON deployments ((1))
		WHERE status IN ('pending', 'in_progress', 'paused')`)
	if err != nil {
		return fmt.Errorf("failed to create single-live-deployment index: %w", err)
	}

	// A waiting course has exactly one in-flight commis job; resume lookups
	// scan non-terminal jobs by course.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS commis_jobs_open_by_course
		ON commis_jobs (concierge_course_id)
		WHERE status IN ('queued', 'running')`)
	if err != nil {
		return fmt.Errorf("failed to create open-commis-jobs index: %w", err)
	}

	// Full-text search over commis tasks for inbox queries
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_commis_jobs_task_gin
		ON commis_jobs USING gin(to_tsvector('english', task))`)
	if err != nil {
		return fmt.Errorf("failed to create task GIN index: %w", err)
	}

	return nil
}
