// Package events provides the course event spine: durable, course-keyed
// event rows plus real-time delivery to SSE subscribers via PostgreSQL
// NOTIFY/LISTEN for cross-pod distribution.
//
// Every event is persisted to course_events and broadcast on the course's
// channel in one transaction (pg_notify is transactional, held until COMMIT),
// so a subscriber that catches up by db_event_id then listens live can never
// miss an event. A transient copy goes to the owner's user channel for inbox
// views; that copy is NOTIFY-only.
package events

import "strconv"

// Course lifecycle event types stored in course_events.
const (
	EventConciergeStarted     = "concierge_started"
	EventConciergeThinking    = "concierge_thinking"
	EventConciergeToolStarted = "concierge_tool_started"
	EventConciergeWaiting     = "concierge_waiting"
	EventConciergeComplete    = "concierge_complete"
	EventToolStarted          = "tool_started"
	EventToolCompleted        = "tool_completed"
	EventToolFailed           = "tool_failed"
	EventCommisSpawned        = "commis_spawned"
	EventCommisStarted        = "commis_started"
	EventCommisComplete       = "commis_complete"
	EventError                = "error"
	EventCourseUpdated        = "course_updated"
)

// SSE-only frame types, never persisted.
const (
	FrameConnected = "connected"
	FrameHeartbeat = "heartbeat"
)

// CourseChannel returns the NOTIFY channel for a course's events.
// Format: "course:{course_id}"
func CourseChannel(courseID int) string {
	return "course:" + strconv.Itoa(courseID)
}

// UserChannel returns the NOTIFY channel carrying transient copies of a
// user's course events, for inbox/list views.
// Format: "user:{owner_id}"
func UserChannel(ownerID int) string {
	return "user:" + strconv.Itoa(ownerID)
}
