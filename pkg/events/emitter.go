package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Emitter appends course events and broadcasts them.
// Each event is persisted to the course_events table and broadcast via NOTIFY
// on the course channel within a single transaction; a transient copy goes to
// the owner's user channel after commit.
//
// Emit returns errors so tests can assert on them, but production callers go
// through services.EventService, which treats event emission as best-effort.
type Emitter struct {
	db *sql.DB
}

// NewEmitter creates an Emitter over the shared database pool.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEmitter(db *sql.DB) *Emitter {
	return &Emitter{db: db}
}

// Emit persists one event for a course and broadcasts it. ownerID routes the
// transient user-channel copy; pass 0 to skip it.
func (e *Emitter) Emit(ctx context.Context, courseID, ownerID int, eventType string, payload map[string]interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	envelope, err := e.persistAndNotify(ctx, courseID, eventType, payloadJSON, payload)
	if err != nil {
		return err
	}

	if ownerID != 0 {
		if err := e.notifyOnly(ctx, UserChannel(ownerID), envelope); err != nil {
			slog.Warn("Failed to notify user channel",
				"course_id", courseID, "owner_id", ownerID, "event_type", eventType, "error", err)
		}
	}
	return nil
}

// persistAndNotify inserts the event row and issues pg_notify on the course
// channel in one transaction, so the NOTIFY fires exactly when the row
// becomes visible. Returns the enveloped NOTIFY payload for reuse on the
// user channel.
func (e *Emitter) persistAndNotify(ctx context.Context, courseID int, eventType string, payloadJSON []byte, payload map[string]interface{}) (string, error) {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO course_events (course_id, event_type, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		courseID, eventType, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return "", fmt.Errorf("failed to persist event: %w", err)
	}

	envelope := Envelope{
		Type:      eventType,
		CourseID:  courseID,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		DBEventID: &eventID,
	}
	notifyPayload, err := marshalForNotify(envelope)
	if err != nil {
		return "", err
	}

	// pg_notify within the same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", CourseChannel(courseID), notifyPayload)
	if err != nil {
		return "", fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return notifyPayload, nil
}

// notifyOnly broadcasts a pre-marshaled envelope via NOTIFY without
// persisting anything.
func (e *Emitter) notifyOnly(ctx context.Context, channel, notifyPayload string) error {
	_, err := e.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// notifyLimit is kept below PostgreSQL's 8000-byte NOTIFY payload cap.
const notifyLimit = 7900

// marshalForNotify marshals an envelope, replacing the payload with a
// truncation marker when it exceeds the NOTIFY limit. Subscribers fetch the
// full row by db_event_id in that case.
func marshalForNotify(env Envelope) (string, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("failed to marshal NOTIFY envelope: %w", err)
	}
	if len(data) <= notifyLimit {
		return string(data), nil
	}

	env.Payload = nil
	env.Truncated = true
	data, err = json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated NOTIFY envelope: %w", err)
	}
	return string(data), nil
}
