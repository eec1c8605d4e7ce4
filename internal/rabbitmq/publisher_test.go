package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange, key string
	msg           amqp.Publishing
	err           error
	closed        bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublishEvent_PersistentJSONToQueue(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, queueName: "warehouse_orders"}

	event := map[string]any{"type": "order_created", "event_id": "abc", "orderID": 3}
	require.NoError(t, p.PublishEvent(context.Background(), "order_events", "user-1", event))

	assert.Equal(t, "", ch.exchange)
	assert.Equal(t, "warehouse_orders", ch.key)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, "order_events", ch.msg.Type)
	assert.Equal(t, "abc", ch.msg.MessageId)
	assert.Equal(t, "user-1", ch.msg.Headers["key"])

	var got map[string]any
	require.NoError(t, json.Unmarshal(ch.msg.Body, &got))
	assert.Equal(t, "order_created", got["type"])
	assert.EqualValues(t, 3, got["orderID"])
}

func TestPublishEvent_WrapsChannelError(t *testing.T) {
	p := &Publisher{ch: &fakeChannel{err: errors.New("channel closed")}, queueName: "q"}

	err := p.PublishEvent(context.Background(), "order_events", "k", map[string]any{})
	assert.ErrorContains(t, err, "failed to publish to q")
}

func TestClose(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, queueName: "q"}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
