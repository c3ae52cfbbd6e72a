package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oikos-sh/brigade/pkg/models"
)

const (
	defaultCourseLimit = 20
	maxCourseLimit     = 100
)

// pathID parses a numeric path parameter, responding 400 on garbage.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// handleChat accepts a concierge message and starts (or resumes) a course.
func (s *Server) handleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	resp, err := s.concierge.Chat(c.Request.Context(), currentUserID(c), req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleListCourses returns the caller's recent courses, newest first.
func (s *Server) handleListCourses(c *gin.Context) {
	limit := defaultCourseLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = min(n, maxCourseLimit)
	}

	courses, err := s.courses.List(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CourseListResponse{Courses: courses})
}

// handleActiveCourses returns the caller's non-terminal courses, or 204 when
// there are none.
func (s *Server) handleActiveCourses(c *gin.Context) {
	courses, err := s.courses.Active(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(courses) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, models.CourseListResponse{Courses: courses})
}

func (s *Server) handleGetCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := s.courses.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleCancelCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := s.courses.Cancel(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// handleCourseEvents returns the course's durable events in insertion order.
// Optional query params: event_type narrows to one type, limit caps the page.
func (s *Server) handleCourseEvents(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	// Ownership check; the event table itself is not owner-scoped.
	if _, err := s.courses.Get(c.Request.Context(), currentUserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}

	rows, err := s.eventsSvc.GetCourseEvents(c.Request.Context(), id, c.Query("event_type"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	type eventView struct {
		ID        int                    `json:"id"`
		EventType string                 `json:"event_type"`
		Payload   map[string]interface{} `json:"payload,omitempty"`
		CreatedAt string                 `json:"created_at"`
	}
	views := make([]eventView, 0, len(rows))
	for _, row := range rows {
		views = append(views, eventView{
			ID:        row.ID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	c.JSON(http.StatusOK, gin.H{"course_id": id, "events": views})
}

func (s *Server) handleTimeline(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := s.timeline.GetTimeline(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
