package services

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/courseevent"
	"github.com/oikos-sh/brigade/pkg/events"
)

// EventService wraps the events.Emitter for business-layer callers. Emission
// is fire-and-forget: an event that cannot be written must never fail the
// operation that produced it.
type EventService struct {
	db      *ent.Client
	sqlDB   *stdsql.DB
	emitter *events.Emitter
}

// NewEventService creates an EventService. sqlDB is the shared pool from
// database.Client.DB(); it backs reads Ent cannot express.
func NewEventService(db *ent.Client, sqlDB *stdsql.DB, emitter *events.Emitter) *EventService {
	return &EventService{db: db, sqlDB: sqlDB, emitter: emitter}
}

// Emit persists and broadcasts one course event. Failures are logged.
func (s *EventService) Emit(ctx context.Context, courseID, ownerID int, eventType string, payload map[string]interface{}) {
	if err := s.emitter.Emit(ctx, courseID, ownerID, eventType, payload); err != nil {
		slog.Error("Failed to emit course event",
			"course_id", courseID, "event_type", eventType, "error", err)
	}
}

// GetCourseEvents returns a course's durable events in insertion order.
// eventType narrows to one type when non-empty; limit caps the result when
// positive.
func (s *EventService) GetCourseEvents(ctx context.Context, courseID int, eventType string, limit int) ([]*ent.CourseEvent, error) {
	q := s.db.CourseEvent.Query().
		Where(courseevent.CourseIDEQ(courseID)).
		Order(ent.Asc(courseevent.FieldID))
	if eventType != "" {
		q = q.Where(courseevent.EventTypeEQ(eventType))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query course events: %w", err)
	}
	return rows, nil
}

// LatestEvent is one course's most recent durable event, as returned by
// LatestPerCourse.
type LatestEvent struct {
	ID        int
	CourseID  int
	EventType string
	CreatedAt time.Time
}

// LatestPerCourse returns each course's newest event in a single windowed
// query. Courses with no events are absent from the map.
func (s *EventService) LatestPerCourse(ctx context.Context, courseIDs []int) (map[int]LatestEvent, error) {
	if len(courseIDs) == 0 {
		return map[int]LatestEvent{}, nil
	}

	placeholders := make([]string, len(courseIDs))
	args := make([]interface{}, len(courseIDs))
	for i, id := range courseIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf(`
		SELECT id, course_id, event_type, created_at FROM (
			SELECT id, course_id, event_type, created_at,
			       ROW_NUMBER() OVER (PARTITION BY course_id ORDER BY id DESC) AS rn
			FROM course_events
			WHERE course_id IN (%s)
		) ranked WHERE rn = 1`, strings.Join(placeholders, ", "))

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest events: %w", err)
	}
	defer rows.Close()

	out := make(map[int]LatestEvent, len(courseIDs))
	for rows.Next() {
		var evt LatestEvent
		if err := rows.Scan(&evt.ID, &evt.CourseID, &evt.EventType, &evt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan latest event: %w", err)
		}
		out[evt.CourseID] = evt
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read latest events: %w", err)
	}
	return out, nil
}

// GetCatchupEvents implements events.CatchupQuerier: it replays a channel's
// durable events with id > sinceID. Only course channels have durable
// backing; user channels are transient and return nothing.
func (s *EventService) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]events.CatchupEvent, error) {
	courseID, ok := parseCourseChannel(channel)
	if !ok {
		return nil, nil
	}

	rows, err := s.db.CourseEvent.Query().
		Where(
			courseevent.CourseIDEQ(courseID),
			courseevent.IDGT(sinceID),
		).
		Order(ent.Asc(courseevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	out := make([]events.CatchupEvent, 0, len(rows))
	for _, row := range rows {
		payload := map[string]interface{}{
			"type":      row.EventType,
			"course_id": row.CourseID,
			"payload":   row.Payload,
			"timestamp": row.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
		out = append(out, events.CatchupEvent{ID: row.ID, Payload: payload})
	}
	return out, nil
}

// parseCourseChannel extracts the course id from a "course:{id}" channel name.
func parseCourseChannel(channel string) (int, bool) {
	var id int
	if _, err := fmt.Sscanf(channel, "course:%d", &id); err != nil {
		return 0, false
	}
	return id, true
}
