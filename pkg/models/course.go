package models

import (
	"time"

	"github.com/oikos-sh/brigade/ent"
)

// ChatRequest is the body of POST /api/jarvis/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse acknowledges an accepted chat message.
type ChatResponse struct {
	CourseID      int    `json:"course_id"`
	CorrelationID string `json:"correlation_id"`
	Status        string `json:"status"`
}

// Signal sources for course list views, in derivation priority order.
const (
	SignalSummary     = "summary"
	SignalError       = "error"
	SignalLastMessage = "last_message"
	SignalLastEvent   = "last_event"
)

// CourseView is the owner-scoped list/detail representation of a course.
// Signal is a one-line human-readable digest derived from the best available
// source; Result is populated only when the course succeeded.
type CourseView struct {
	ID            int        `json:"id"`
	FicheID       int        `json:"fiche_id"`
	ThreadID      int        `json:"thread_id"`
	Status        string     `json:"status"`
	Trigger       string     `json:"trigger"`
	CorrelationID string     `json:"correlation_id"`
	Signal        string     `json:"signal,omitempty"`
	SignalSource  string     `json:"signal_source,omitempty"`
	Result        string     `json:"result,omitempty"`
	Error         string     `json:"error,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

// NewCourseView builds the base view from a course row; signal derivation is
// the course service's job.
func NewCourseView(c *ent.Course) CourseView {
	v := CourseView{
		ID:            c.ID,
		FicheID:       c.FicheID,
		ThreadID:      c.ThreadID,
		Status:        string(c.Status),
		Trigger:       string(c.Trigger),
		CorrelationID: c.CorrelationID,
		CreatedAt:     c.CreatedAt,
		FinishedAt:    c.FinishedAt,
	}
	if c.Error != nil {
		v.Error = *c.Error
	}
	return v
}

// CourseListResponse is the body of GET /api/jarvis/courses.
type CourseListResponse struct {
	Courses []CourseView `json:"courses"`
}
