package mykafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer_RequiresBrokers(t *testing.T) {
	_, err := NewProducer(nil, []string{"order_events"})
	assert.Error(t, err)
}

func TestPublishEvent_RejectsUnknownTopic(t *testing.T) {
	p, err := NewProducer([]string{"localhost:9092"}, []string{"order_events"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	err = p.PublishEvent(context.Background(), "user_events", "1", map[string]any{"type": "x"})
	assert.ErrorIs(t, err, ErrUnknownTopic)
}

func TestPublishEvent_UnmarshalableEvent(t *testing.T) {
	p, err := NewProducer([]string{"localhost:9092"}, []string{"order_events"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	err = p.PublishEvent(context.Background(), "order_events", "1", map[string]any{"bad": make(chan int)})
	assert.ErrorContains(t, err, "marshal event")
}
