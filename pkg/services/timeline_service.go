package services

import (
	"context"
	"time"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/pkg/events"
	"github.com/oikos-sh/brigade/pkg/models"
)

// TimelineService derives per-course timelines from durable events. All
// derivation happens on read; nothing is stored.
type TimelineService struct {
	events *EventService
	course *CourseService
}

// NewTimelineService creates a TimelineService.
func NewTimelineService(eventSvc *EventService, courseSvc *CourseService) *TimelineService {
	return &TimelineService{events: eventSvc, course: courseSvc}
}

// GetTimeline returns the course's events with offsets and the derived phase
// summary, enforcing ownership.
func (s *TimelineService) GetTimeline(ctx context.Context, ownerID, courseID int) (*models.TimelineResponse, error) {
	if _, err := s.course.getOwned(ctx, ownerID, courseID); err != nil {
		return nil, err
	}

	rows, err := s.events.GetCourseEvents(ctx, courseID, "", 0)
	if err != nil {
		return nil, err
	}

	resp := &models.TimelineResponse{CourseID: courseID}
	if len(rows) == 0 {
		return resp, nil
	}

	origin := rows[0].CreatedAt
	for _, row := range rows {
		resp.Events = append(resp.Events, models.TimelineEventView{
			ID:        row.ID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
			OffsetMs:  row.CreatedAt.Sub(origin).Milliseconds(),
		})
	}
	resp.Summary = derivePhases(rows)
	return resp, nil
}

// derivePhases computes phase durations from event timestamps. Each phase
// needs both bounding events; otherwise it stays nil.
func derivePhases(rows []*ent.CourseEvent) models.TimelineSummary {
	var summary models.TimelineSummary

	first := func(eventType string) *time.Time {
		for _, row := range rows {
			if row.EventType == eventType {
				t := row.CreatedAt
				return &t
			}
		}
		return nil
	}
	last := func(types ...string) *time.Time {
		for i := len(rows) - 1; i >= 0; i-- {
			for _, et := range types {
				if rows[i].EventType == et {
					t := rows[i].CreatedAt
					return &t
				}
			}
		}
		return nil
	}

	started := first(events.EventConciergeStarted)
	spawned := first(events.EventCommisSpawned)
	commisDone := last(events.EventCommisComplete)
	toolFirst := first(events.EventToolStarted)
	toolLast := last(events.EventToolCompleted, events.EventToolFailed)

	if started != nil && spawned != nil {
		ms := spawned.Sub(*started).Milliseconds()
		summary.ConciergeThinkingMs = &ms
	}
	if spawned != nil && commisDone != nil {
		ms := commisDone.Sub(*spawned).Milliseconds()
		summary.CommisExecutionMs = &ms
	}
	if toolFirst != nil && toolLast != nil && !toolLast.Before(*toolFirst) {
		ms := toolLast.Sub(*toolFirst).Milliseconds()
		summary.ToolExecutionMs = &ms
	}

	total := rows[len(rows)-1].CreatedAt.Sub(rows[0].CreatedAt).Milliseconds()
	summary.TotalMs = &total
	return summary
}
