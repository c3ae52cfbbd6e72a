package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/pkg/events"
	"github.com/oikos-sh/brigade/pkg/models"
	"github.com/oikos-sh/brigade/pkg/services"
	testdb "github.com/oikos-sh/brigade/test/database"
)

// seedCourse creates the owner/fiche/thread chain and one course on it.
func seedCourse(t *testing.T, client *ent.Client, email, corr string) *ent.Course {
	t.Helper()
	ctx := context.Background()

	owner, err := client.User.Create().SetEmail(email).Save(ctx)
	require.NoError(t, err)
	f, err := client.Fiche.Create().
		SetOwnerID(owner.ID).
		SetName("concierge-" + corr).
		SetSystemInstructions("assist").
		SetModel("gpt-4o").
		Save(ctx)
	require.NoError(t, err)
	thread, err := client.Thread.Create().
		SetFicheID(f.ID).
		SetOwnerID(owner.ID).
		Save(ctx)
	require.NoError(t, err)
	c, err := client.Course.Create().
		SetFicheID(f.ID).
		SetThreadID(thread.ID).
		SetOwnerID(owner.ID).
		SetStatus(course.StatusRunning).
		SetCorrelationID(corr).
		Save(ctx)
	require.NoError(t, err)
	return c
}

func newEventService(t *testing.T) (*services.EventService, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	emitter := events.NewEmitter(client.DB())
	return services.NewEventService(client.Client, client.DB(), emitter), client.Client
}

func TestGetCourseEventsFiltering(t *testing.T) {
	svc, client := newEventService(t)
	ctx := context.Background()
	c := seedCourse(t, client, "filter@test.local", "corr-filter")

	svc.Emit(ctx, c.ID, c.OwnerID, "concierge_started", nil)
	svc.Emit(ctx, c.ID, c.OwnerID, "concierge_thinking", map[string]interface{}{"turn": float64(1)})
	svc.Emit(ctx, c.ID, c.OwnerID, "concierge_thinking", map[string]interface{}{"turn": float64(2)})
	svc.Emit(ctx, c.ID, c.OwnerID, "concierge_complete", nil)

	all, err := svc.GetCourseEvents(ctx, c.ID, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "concierge_started", all[0].EventType)
	assert.Equal(t, "concierge_complete", all[3].EventType)

	thinking, err := svc.GetCourseEvents(ctx, c.ID, "concierge_thinking", 0)
	require.NoError(t, err)
	require.Len(t, thinking, 2)
	assert.Equal(t, float64(1), thinking[0].Payload["turn"])
	assert.Equal(t, float64(2), thinking[1].Payload["turn"])

	limited, err := svc.GetCourseEvents(ctx, c.ID, "", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "concierge_started", limited[0].EventType)

	one, err := svc.GetCourseEvents(ctx, c.ID, "concierge_thinking", 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, float64(1), one[0].Payload["turn"])
}

func TestLatestPerCourse(t *testing.T) {
	svc, client := newEventService(t)
	ctx := context.Background()

	busy := seedCourse(t, client, "busy@test.local", "corr-busy")
	quiet := seedCourse(t, client, "quiet@test.local", "corr-quiet")
	silent := seedCourse(t, client, "silent@test.local", "corr-silent")

	svc.Emit(ctx, busy.ID, busy.OwnerID, "concierge_started", nil)
	svc.Emit(ctx, busy.ID, busy.OwnerID, "tool_started", nil)
	svc.Emit(ctx, busy.ID, busy.OwnerID, "commis_spawned", nil)
	svc.Emit(ctx, quiet.ID, quiet.OwnerID, "concierge_started", nil)

	latest, err := svc.LatestPerCourse(ctx, []int{busy.ID, quiet.ID, silent.ID})
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "commis_spawned", latest[busy.ID].EventType)
	assert.Equal(t, "concierge_started", latest[quiet.ID].EventType)
	_, ok := latest[silent.ID]
	assert.False(t, ok)

	empty, err := svc.LatestPerCourse(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListSignalFromLatestEvent(t *testing.T) {
	svc, client := newEventService(t)
	ctx := context.Background()
	c := seedCourse(t, client, "signal@test.local", "corr-signal")

	svc.Emit(ctx, c.ID, c.OwnerID, "concierge_started", nil)
	svc.Emit(ctx, c.ID, c.OwnerID, "concierge_thinking", nil)

	courses := services.NewCourseService(client, svc)
	views, err := courses.List(ctx, c.OwnerID, 10)
	require.NoError(t, err)
	require.Len(t, views, 1)

	// No summary, error, or assistant message: the signal falls through to
	// the newest durable event
	assert.Equal(t, "concierge_thinking", views[0].Signal)
	assert.Equal(t, models.SignalLastEvent, views[0].SignalSource)
}
