package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oikos-sh/brigade/pkg/events"
)

func TestWriteRaw(t *testing.T) {
	var b strings.Builder
	writeRaw(&b, "commis_complete", "17", []byte(`{"type":"commis_complete"}`))
	assert.Equal(t, "event: commis_complete\nid: 17\ndata: {\"type\":\"commis_complete\"}\n\n", b.String())
}

func TestWriteRawOmitsEmptyFields(t *testing.T) {
	var b strings.Builder
	writeRaw(&b, "", "", []byte(`{}`))
	assert.Equal(t, "data: {}\n\n", b.String())
}

func TestForwardFrame(t *testing.T) {
	var b strings.Builder
	env := forwardFrame(&b, []byte(`{"type":"course_updated","db_event_id":9,"payload":{"status":"success"}}`))

	assert.Equal(t, events.EventCourseUpdated, env.Type)
	assert.Equal(t, "success", env.Payload.Status)
	assert.Contains(t, b.String(), "event: course_updated\n")
	assert.Contains(t, b.String(), "id: 9\n")
}

func TestWriteCompletion(t *testing.T) {
	var b strings.Builder
	writeCompletion(&b, 5, "cancelled")

	out := b.String()
	assert.Contains(t, out, "event: course_updated\n")
	assert.Contains(t, out, `"course_id":5`)
	assert.Contains(t, out, `"status":"cancelled"`)
	assert.True(t, strings.HasSuffix(out, "\n\n"))
}
