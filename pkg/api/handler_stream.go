package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oikos-sh/brigade/pkg/events"
	"github.com/oikos-sh/brigade/pkg/models"
)

// heartbeatInterval keeps intermediary proxies from timing out idle streams.
const heartbeatInterval = 30 * time.Second

// frameEnvelope is the subset of the broadcast envelope the stream handler
// inspects to name the SSE event and detect course settlement.
type frameEnvelope struct {
	Type      string `json:"type"`
	DBEventID *int64 `json:"db_event_id"`
	Payload   struct {
		Status string `json:"status"`
	} `json:"payload"`
}

// handleStream serves the course's live event stream over SSE. The connection
// holds no database session: ownership and catchup are short-lived queries,
// and everything after that arrives via the broker.
func (s *Server) handleStream(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	course, err := s.courses.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	sinceID := 0
	if v := c.GetHeader("Last-Event-ID"); v != "" {
		sinceID, _ = strconv.Atoi(v)
	} else if v := c.Query("since_id"); v != "" {
		sinceID, _ = strconv.Atoi(v)
	}

	sub, err := s.broker.Subscribe(c.Request.Context(), events.CourseChannel(id), sinceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe to course events"})
		return
	}
	defer sub.Close()

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	writeFrame(c.Writer, events.FrameConnected, "", map[string]interface{}{
		"course_id": id,
		"status":    course.Status,
	})
	c.Writer.Flush()

	// A settled course gets its catchup replay and exactly one completion
	// frame, then the stream ends; there is nothing more to wait for.
	if models.CourseTerminal(course.Status) {
		drainBuffered(c.Writer, sub)
		writeCompletion(c.Writer, id, course.Status)
		c.Writer.Flush()
		return
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return

		case <-heartbeat.C:
			writeFrame(c.Writer, events.FrameHeartbeat, "", map[string]interface{}{
				"ts": time.Now().UTC().Format(time.RFC3339),
			})
			c.Writer.Flush()

		case data, open := <-sub.C:
			if !open {
				return
			}
			env := forwardFrame(c.Writer, data)
			c.Writer.Flush()
			if env.Type == events.EventCourseUpdated && models.CourseTerminal(env.Payload.Status) {
				return
			}
		}
	}
}

// drainBuffered forwards frames already sitting in the subscriber buffer.
// Catchup fills the buffer synchronously during Subscribe, so a non-blocking
// drain replays the full missed history.
func drainBuffered(w io.Writer, sub *events.Subscription) {
	for {
		select {
		case data, open := <-sub.C:
			if !open {
				return
			}
			forwardFrame(w, data)
		default:
			return
		}
	}
}

// forwardFrame writes one broadcast envelope as an SSE frame, returning the
// parsed envelope so callers can detect settlement.
func forwardFrame(w io.Writer, data []byte) frameEnvelope {
	var env frameEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return env
	}
	eventID := ""
	if env.DBEventID != nil {
		eventID = strconv.FormatInt(*env.DBEventID, 10)
	}
	writeRaw(w, env.Type, eventID, data)
	return env
}

// writeCompletion emits the single terminal frame for an already-settled
// course.
func writeCompletion(w io.Writer, courseID int, status string) {
	writeFrame(w, events.EventCourseUpdated, "", map[string]interface{}{
		"type":      events.EventCourseUpdated,
		"course_id": courseID,
		"payload":   map[string]interface{}{"course_id": courseID, "status": status},
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// writeFrame marshals a payload and writes one SSE frame.
func writeFrame(w io.Writer, eventType, id string, payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	writeRaw(w, eventType, id, data)
}

// writeRaw writes one SSE frame from pre-marshaled data.
func writeRaw(w io.Writer, eventType, id string, data []byte) {
	if eventType != "" {
		fmt.Fprintf(w, "event: %s\n", eventType)
	}
	if id != "" {
		fmt.Fprintf(w, "id: %s\n", id)
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
}
