package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, c <-chan []byte, n int) []map[string]interface{} {
	t.Helper()
	out := make([]map[string]interface{}, 0, n)
	for len(out) < n {
		select {
		case data := <-c:
			var m map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &m))
			out = append(out, m)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for frame %d of %d", len(out)+1, n)
		}
	}
	return out
}

func TestBrokerBroadcast(t *testing.T) {
	b := NewBroker(nil)
	ctx := context.Background()

	sub1, err := b.Subscribe(ctx, CourseChannel(1), 0)
	require.NoError(t, err)
	defer sub1.Close()
	sub2, err := b.Subscribe(ctx, CourseChannel(1), 0)
	require.NoError(t, err)
	defer sub2.Close()
	other, err := b.Subscribe(ctx, CourseChannel(2), 0)
	require.NoError(t, err)
	defer other.Close()

	b.Broadcast(CourseChannel(1), []byte(`{"type":"concierge_started"}`))

	for _, sub := range []*Subscription{sub1, sub2} {
		frames := collect(t, sub.C, 1)
		assert.Equal(t, "concierge_started", frames[0]["type"])
	}
	select {
	case <-other.C:
		t.Fatal("subscriber on another channel received the frame")
	default:
	}
}

func TestBrokerCatchup(t *testing.T) {
	querier := QuerierFunc(func(_ context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
		assert.Equal(t, CourseChannel(7), channel)
		assert.Equal(t, 3, sinceID)
		return []CatchupEvent{
			{ID: 4, Payload: map[string]interface{}{"type": "tool_started"}},
			{ID: 5, Payload: map[string]interface{}{"type": "tool_completed"}},
		}, nil
	})
	b := NewBroker(querier)

	sub, err := b.Subscribe(context.Background(), CourseChannel(7), 3)
	require.NoError(t, err)
	defer sub.Close()

	frames := collect(t, sub.C, 2)
	assert.Equal(t, "tool_started", frames[0]["type"])
	assert.EqualValues(t, 4, frames[0]["db_event_id"])
	assert.EqualValues(t, 5, frames[1]["db_event_id"])
}

func TestBrokerCatchupOverflow(t *testing.T) {
	querier := QuerierFunc(func(_ context.Context, _ string, _, limit int) ([]CatchupEvent, error) {
		evts := make([]CatchupEvent, limit)
		for i := range evts {
			evts[i] = CatchupEvent{ID: i + 1, Payload: map[string]interface{}{"type": "tool_started"}}
		}
		return evts, nil
	})
	b := NewBroker(querier)

	sub, err := b.Subscribe(context.Background(), CourseChannel(1), 0)
	require.NoError(t, err)
	defer sub.Close()

	frames := collect(t, sub.C, catchupLimit+1)
	last := frames[len(frames)-1]
	assert.Equal(t, "catchup.overflow", last["type"])
	assert.Equal(t, true, last["has_more"])
}

func TestBrokerUnsubscribe(t *testing.T) {
	b := NewBroker(nil)
	sub, err := b.Subscribe(context.Background(), CourseChannel(1), 0)
	require.NoError(t, err)

	assert.Equal(t, 1, b.SubscriberCount(CourseChannel(1)))
	sub.Close()
	assert.Equal(t, 0, b.SubscriberCount(CourseChannel(1)))

	// Close is idempotent
	sub.Close()

	// The subscriber channel is closed so range loops terminate
	_, open := <-sub.C
	assert.False(t, open)
}

func TestBrokerSlowSubscriberDropsFrames(t *testing.T) {
	b := NewBroker(nil)
	sub, err := b.Subscribe(context.Background(), CourseChannel(1), 0)
	require.NoError(t, err)
	defer sub.Close()

	// Overfill the buffer; Broadcast must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer+10; i++ {
			b.Broadcast(CourseChannel(1), []byte(`{"type":"heartbeat"}`))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast blocked on a slow subscriber")
	}
}
