package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup replay.
// If more events were missed, a catchup.overflow frame tells the client to do
// a full REST reload.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when subscribing
// to a new PG channel. Without this, a stalled connection would block the
// subscribing request handler indefinitely.
const listenTimeout = 10 * time.Second

// subscriberBuffer is the per-subscriber frame buffer. A subscriber that
// falls this far behind starts losing frames; SSE clients recover via
// db_event_id catchup on reconnect.
const subscriberBuffer = 256

// CatchupEvent holds the data returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier queries events for catchup. Implemented by EventService.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// Broker fans course events out to in-process SSE subscribers, keyed by
// channel (course:{id}, user:{id}). Each Go process (pod) has one Broker;
// the NotifyListener feeds it notifications from other pods.
type Broker struct {
	// Channel subscriptions: channel → subscription id → subscription
	subs map[string]map[string]*Subscription
	mu   sync.RWMutex

	catchupQuerier CatchupQuerier

	// NotifyListener for dynamic LISTEN/UNLISTEN (set after construction)
	listener   *NotifyListener
	listenerMu sync.RWMutex
}

// Subscription is one SSE client's attachment to a channel. Frames arrives
// on C; Close releases the subscription (and the underlying PG LISTEN when
// it was the last subscriber).
type Subscription struct {
	ID      string
	C       <-chan []byte
	ch      chan []byte
	channel string
	broker  *Broker
	once    sync.Once
}

// Close detaches the subscription from its channel.
func (s *Subscription) Close() {
	s.once.Do(func() { s.broker.unsubscribe(s) })
}

// NewBroker creates a Broker.
func NewBroker(catchupQuerier CatchupQuerier) *Broker {
	return &Broker{
		subs:           make(map[string]map[string]*Subscription),
		catchupQuerier: catchupQuerier,
	}
}

// SetListener sets the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both Broker and NotifyListener exist.
func (b *Broker) SetListener(l *NotifyListener) {
	b.listenerMu.Lock()
	defer b.listenerMu.Unlock()
	b.listener = l
}

// Subscribe attaches a new subscriber to a channel. LISTEN is established
// synchronously before catchup runs, closing the gap where events published
// between catchup and LISTEN would be lost: catchup replays everything after
// sinceID, and anything newer arrives live.
func (b *Broker) Subscribe(ctx context.Context, channel string, sinceID int) (*Subscription, error) {
	sub := &Subscription{
		ID:      uuid.New().String(),
		ch:      make(chan []byte, subscriberBuffer),
		channel: channel,
		broker:  b,
	}
	sub.C = sub.ch

	b.mu.Lock()
	needsListen := false
	if _, exists := b.subs[channel]; !exists {
		b.subs[channel] = make(map[string]*Subscription)
		needsListen = true
	}
	b.subs[channel][sub.ID] = sub
	b.mu.Unlock()

	if needsListen {
		b.listenerMu.RLock()
		l := b.listener
		b.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				b.mu.Lock()
				delete(b.subs, channel)
				b.mu.Unlock()
				return nil, fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	b.catchup(ctx, sub, sinceID)
	return sub, nil
}

// Broadcast delivers an event payload to all subscribers of the channel.
// Slow subscribers are skipped rather than blocked on; they recover via
// db_event_id catchup on reconnect.
func (b *Broker) Broadcast(channel string, event []byte) {
	// Sends happen under the read lock: they are non-blocking, and holding
	// the lock excludes unsubscribe's close of the subscriber channel.
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs[channel] {
		select {
		case sub.ch <- event:
		default:
			slog.Warn("Dropping frame for slow subscriber",
				"subscription_id", sub.ID, "channel", channel)
		}
	}
}

// SubscriberCount returns the number of subscribers for a channel.
func (b *Broker) SubscriberCount(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[channel])
}

// catchup replays missed events since sinceID into the subscriber's buffer.
func (b *Broker) catchup(ctx context.Context, sub *Subscription, sinceID int) {
	if b.catchupQuerier == nil {
		return
	}

	// Query capped at catchupLimit + 1 to detect overflow
	evts, err := b.catchupQuerier.GetCatchupEvents(ctx, sub.channel, sinceID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", sub.channel, "error", err)
		return
	}

	hasMore := len(evts) > catchupLimit
	if hasMore {
		evts = evts[:catchupLimit]
	}

	// The stored payload doesn't contain db_event_id (it's only added to the
	// NOTIFY envelope at publish time), so inject it from the row id here.
	for _, evt := range evts {
		evt.Payload["db_event_id"] = evt.ID
		data, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		select {
		case sub.ch <- data:
		default:
			slog.Warn("Catchup overflowed subscriber buffer",
				"subscription_id", sub.ID, "channel", sub.channel)
			return
		}
	}

	if hasMore {
		overflow, _ := json.Marshal(map[string]interface{}{
			"type":     "catchup.overflow",
			"channel":  sub.channel,
			"has_more": true,
		})
		select {
		case sub.ch <- overflow:
		default:
		}
	}
}

// unsubscribe removes a subscription and stops LISTEN if it was the last
// subscriber on its channel.
func (b *Broker) unsubscribe(sub *Subscription) {
	channel := sub.channel

	b.mu.Lock()
	if subs, exists := b.subs[channel]; exists {
		delete(subs, sub.ID)
		if len(subs) == 0 {
			delete(b.subs, channel)
			// Last subscriber left — stop LISTEN. The goroutine re-checks
			// b.subs before issuing UNLISTEN to prevent a race where a rapid
			// unsubscribe/resubscribe cycle would drop the LISTEN.
			b.listenerMu.RLock()
			l := b.listener
			b.listenerMu.RUnlock()
			if l != nil {
				go func() {
					b.mu.RLock()
					_, resubscribed := b.subs[channel]
					b.mu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	// Closed under the write lock; Broadcast sends only under the read lock.
	close(sub.ch)
	b.mu.Unlock()
}
