package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	TopicProduct = "product_events"
	TopicCart    = "cart_events"
	TopicOrder   = "order_events"
)

type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event map[string]any) error
}

// New stamps an event with its type, a fresh id and the current time.
func New(kind string, fields map[string]any) map[string]any {
	event := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		event[k] = v
	}
	event["type"] = kind
	event["event_id"] = uuid.NewString()
	event["occurred_at"] = time.Now().UTC().Format(time.RFC3339Nano)
	return event
}

type Nop struct{}

func (Nop) PublishEvent(context.Context, string, string, map[string]any) error { return nil }

// Fanout delivers to every publisher and joins their errors.
type Fanout []Publisher

func (f Fanout) PublishEvent(ctx context.Context, topic, key string, event map[string]any) error {
	var errs []error
	for _, p := range f {
		if err := p.PublishEvent(ctx, topic, key, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OnlyTopics forwards events of the given topics and drops the rest.
func OnlyTopics(p Publisher, topics ...string) Publisher {
	set := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		set[t] = struct{}{}
	}
	return &filtered{next: p, topics: set}
}

type filtered struct {
	next   Publisher
	topics map[string]struct{}
}

func (f *filtered) PublishEvent(ctx context.Context, topic, key string, event map[string]any) error {
	if _, ok := f.topics[topic]; !ok {
		return nil
	}
	return f.next.PublishEvent(ctx, topic, key, event)
}
