package events

import "context"

// QuerierFunc adapts a function (such as the event service's GetEventsSince)
// to the CatchupQuerier interface, so the Broker can be wired to the event
// service without a package cycle.
type QuerierFunc func(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)

// GetCatchupEvents implements CatchupQuerier.
func (f QuerierFunc) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	return f(ctx, channel, sinceID, limit)
}
