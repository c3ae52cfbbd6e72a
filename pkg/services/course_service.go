package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/ent/courseevent"
	"github.com/oikos-sh/brigade/ent/threadmessage"
	"github.com/oikos-sh/brigade/pkg/events"
	"github.com/oikos-sh/brigade/pkg/models"
)

// signalPreviewLen bounds derived signal text.
const signalPreviewLen = 140

// CourseService provides owner-scoped course reads and cancellation.
type CourseService struct {
	db     *ent.Client
	events *EventService
}

// NewCourseService creates a CourseService.
func NewCourseService(db *ent.Client, eventSvc *EventService) *CourseService {
	return &CourseService{db: db, events: eventSvc}
}

// Get returns one course view, enforcing ownership.
func (s *CourseService) Get(ctx context.Context, ownerID, courseID int) (*models.CourseView, error) {
	c, err := s.getOwned(ctx, ownerID, courseID)
	if err != nil {
		return nil, err
	}
	view := models.NewCourseView(c)
	s.deriveSignal(ctx, c, &view, nil)
	if c.Status == course.StatusSuccess && c.Summary != nil {
		view.Result = *c.Summary
	}
	return &view, nil
}

// List returns the owner's courses, newest first.
func (s *CourseService) List(ctx context.Context, ownerID, limit int) ([]models.CourseView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.db.Course.Query().
		Where(course.OwnerIDEQ(ownerID)).
		Order(ent.Desc(course.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return s.views(ctx, rows), nil
}

// Active returns the owner's unsettled courses: queued, running, waiting,
// plus deferred courses whose continuation has not yet succeeded.
func (s *CourseService) Active(ctx context.Context, ownerID int) ([]models.CourseView, error) {
	rows, err := s.db.Course.Query().
		Where(
			course.OwnerIDEQ(ownerID),
			course.StatusIn(
				course.StatusQueued,
				course.StatusRunning,
				course.StatusWaiting,
				course.StatusDeferred,
			),
		).
		Order(ent.Desc(course.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active courses: %w", err)
	}

	filtered := make([]*ent.Course, 0, len(rows))
	for _, c := range rows {
		if c.Status == course.StatusDeferred {
			settled, err := s.continuationSucceeded(ctx, c.ID)
			if err != nil {
				return nil, err
			}
			if settled {
				continue
			}
		}
		filtered = append(filtered, c)
	}
	return s.views(ctx, filtered), nil
}

// Cancel moves a non-terminal course to cancelled.
func (s *CourseService) Cancel(ctx context.Context, ownerID, courseID int) (*models.CourseView, error) {
	c, err := s.getOwned(ctx, ownerID, courseID)
	if err != nil {
		return nil, err
	}
	if models.CourseTerminal(string(c.Status)) {
		return nil, fmt.Errorf("%w: course %d is %s", ErrNotCancellable, courseID, c.Status)
	}

	c, err = s.db.Course.UpdateOneID(c.ID).
		SetStatus(course.StatusCancelled).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel course: %w", err)
	}

	s.events.Emit(ctx, c.ID, ownerID, events.EventCourseUpdated, events.CourseUpdatedPayload{
		CourseID:      c.ID,
		Status:        string(c.Status),
		CorrelationID: c.CorrelationID,
	}.Map())

	view := models.NewCourseView(c)
	return &view, nil
}

// continuationSucceeded reports whether a successful continuation course
// exists for the given deferred course.
func (s *CourseService) continuationSucceeded(ctx context.Context, courseID int) (bool, error) {
	exists, err := s.db.Course.Query().
		Where(
			course.ContinuationOfCourseIDEQ(courseID),
			course.StatusEQ(course.StatusSuccess),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check continuation: %w", err)
	}
	return exists, nil
}

func (s *CourseService) getOwned(ctx context.Context, ownerID, courseID int) (*ent.Course, error) {
	c, err := s.db.Course.Get(ctx, courseID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: course %d", ErrNotFound, courseID)
		}
		return nil, fmt.Errorf("failed to load course: %w", err)
	}
	if c.OwnerID != ownerID {
		// Present as not-found to avoid leaking course existence
		return nil, fmt.Errorf("%w: course %d", ErrNotFound, courseID)
	}
	return c, nil
}

func (s *CourseService) views(ctx context.Context, rows []*ent.Course) []models.CourseView {
	// One windowed query covers the last-event fallback for the whole page
	ids := make([]int, len(rows))
	for i, c := range rows {
		ids[i] = c.ID
	}
	latest, err := s.events.LatestPerCourse(ctx, ids)
	if err != nil {
		// Signals are derived data; fall back to per-course reads
		slog.Warn("Failed to batch-load latest course events", "error", err)
		latest = nil
	}

	out := make([]models.CourseView, 0, len(rows))
	for _, c := range rows {
		view := models.NewCourseView(c)
		s.deriveSignal(ctx, c, &view, latest)
		out = append(out, view)
	}
	return out
}

// deriveSignal fills the one-line digest, preferring summary, then error,
// then the last assistant message, then the last event type. A non-nil
// latest map replaces the per-course last-event read.
func (s *CourseService) deriveSignal(ctx context.Context, c *ent.Course, view *models.CourseView, latest map[int]LatestEvent) {
	if c.Summary != nil && *c.Summary != "" {
		view.Signal = preview(*c.Summary)
		view.SignalSource = models.SignalSummary
		return
	}
	if c.Error != nil && *c.Error != "" {
		view.Signal = preview(*c.Error)
		view.SignalSource = models.SignalError
		return
	}

	msg, err := s.db.ThreadMessage.Query().
		Where(
			threadmessage.ThreadIDEQ(c.ThreadID),
			threadmessage.RoleEQ(threadmessage.RoleAssistant),
			threadmessage.ContentNEQ(""),
		).
		Order(ent.Desc(threadmessage.FieldID)).
		First(ctx)
	if err == nil {
		view.Signal = preview(msg.Content)
		view.SignalSource = models.SignalLastMessage
		return
	}

	if latest != nil {
		if evt, ok := latest[c.ID]; ok {
			view.Signal = evt.EventType
			view.SignalSource = models.SignalLastEvent
		}
		return
	}

	evt, err := s.db.CourseEvent.Query().
		Where(courseevent.CourseIDEQ(c.ID)).
		Order(ent.Desc(courseevent.FieldID)).
		First(ctx)
	if err == nil {
		view.Signal = evt.EventType
		view.SignalSource = models.SignalLastEvent
	}
}

func preview(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if len(text) > signalPreviewLen {
		text = text[:signalPreviewLen] + "..."
	}
	return text
}
