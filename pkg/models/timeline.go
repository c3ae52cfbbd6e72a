package models

import "time"

// TimelineEventView is one event in a course timeline, annotated with its
// millisecond offset from the earliest event.
type TimelineEventView struct {
	ID        int                    `json:"id"`
	EventType string                 `json:"event_type"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	OffsetMs  int64                  `json:"offset_ms"`
}

// TimelineSummary holds derived phase durations. A phase whose bounding
// events are missing is nil.
type TimelineSummary struct {
	// concierge_started → commis_spawned
	ConciergeThinkingMs *int64 `json:"concierge_thinking_ms"`
	// commis_spawned → commis_complete
	CommisExecutionMs *int64 `json:"commis_execution_ms"`
	// first tool_started → last tool_completed/tool_failed
	ToolExecutionMs *int64 `json:"tool_execution_ms"`
	TotalMs         *int64 `json:"total_ms"`
}

// TimelineResponse is the body of GET /api/jarvis/courses/{id}/timeline.
type TimelineResponse struct {
	CourseID int                 `json:"course_id"`
	Events   []TimelineEventView `json:"events"`
	Summary  TimelineSummary     `json:"summary"`
}
