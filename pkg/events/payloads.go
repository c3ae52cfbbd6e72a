package events

// Envelope is the wire shape of every delivered event frame, both over
// NOTIFY and over SSE. DBEventID is the course_events row id; subscribers
// use it to deduplicate and to resume catchup.
type Envelope struct {
	Type      string                 `json:"type"`
	CourseID  int                    `json:"course_id"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp string                 `json:"timestamp"` // RFC3339Nano
	DBEventID *int64                 `json:"db_event_id,omitempty"`
	Truncated bool                   `json:"truncated,omitempty"`
}

// CourseUpdatedPayload is the payload for course_updated events, published
// on every course status transition.
type CourseUpdatedPayload struct {
	CourseID      int    `json:"course_id"`
	Status        string `json:"status"`
	CorrelationID string `json:"correlation_id,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Map converts the payload to the generic shape Emit accepts.
func (p CourseUpdatedPayload) Map() map[string]interface{} {
	m := map[string]interface{}{
		"course_id": p.CourseID,
		"status":    p.Status,
	}
	if p.CorrelationID != "" {
		m["correlation_id"] = p.CorrelationID
	}
	if p.Error != "" {
		m["error"] = p.Error
	}
	return m
}

// CommisSpawnedPayload is the payload for commis_spawned events, published
// when a concierge tool call creates a commis job and the course suspends.
type CommisSpawnedPayload struct {
	JobID      int    `json:"job_id"`
	CommisID   string `json:"commis_id"`
	ToolCallID string `json:"tool_call_id"`
	Task       string `json:"task"`
}

// Map converts the payload to the generic shape Emit accepts.
func (p CommisSpawnedPayload) Map() map[string]interface{} {
	return map[string]interface{}{
		"job_id":       p.JobID,
		"commis_id":    p.CommisID,
		"tool_call_id": p.ToolCallID,
		"task":         p.Task,
	}
}

// CommisCompletePayload is the payload for commis_complete events, published
// by the dispatcher when a commis job settles.
type CommisCompletePayload struct {
	JobID      int    `json:"job_id"`
	CommisID   string `json:"commis_id"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
	OwnerID    int    `json:"owner_id"`
	TraceID    string `json:"trace_id,omitempty"`
}

// Map converts the payload to the generic shape Emit accepts.
func (p CommisCompletePayload) Map() map[string]interface{} {
	m := map[string]interface{}{
		"job_id":      p.JobID,
		"commis_id":   p.CommisID,
		"status":      p.Status,
		"duration_ms": p.DurationMs,
		"owner_id":    p.OwnerID,
	}
	if p.Error != "" {
		m["error"] = p.Error
	}
	if p.TraceID != "" {
		m["trace_id"] = p.TraceID
	}
	return m
}

// ToolEventPayload is the payload for tool_started / tool_completed /
// tool_failed events.
type ToolEventPayload struct {
	ToolName   string `json:"tool_name"`
	ToolCallID string `json:"tool_call_id"`
	Error      string `json:"error,omitempty"`
}

// Map converts the payload to the generic shape Emit accepts.
func (p ToolEventPayload) Map() map[string]interface{} {
	m := map[string]interface{}{
		"tool_name":    p.ToolName,
		"tool_call_id": p.ToolCallID,
	}
	if p.Error != "" {
		m["error"] = p.Error
	}
	return m
}
