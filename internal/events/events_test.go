package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	topics []string
	err    error
}

func (r *recorder) PublishEvent(_ context.Context, topic, _ string, _ map[string]any) error {
	r.topics = append(r.topics, topic)
	return r.err
}

func TestNew(t *testing.T) {
	e := New("product_created", map[string]any{"productID": 7})

	assert.Equal(t, "product_created", e["type"])
	assert.Equal(t, 7, e["productID"])
	assert.NotEmpty(t, e["event_id"])
	assert.NotEmpty(t, e["occurred_at"])
}

func TestFanout_DeliversToAllAndJoinsErrors(t *testing.T) {
	ok := &recorder{}
	bad := &recorder{err: errors.New("broker down")}

	err := Fanout{bad, ok}.PublishEvent(context.Background(), TopicCart, "u1", New("cart_item_added", nil))
	require.Error(t, err)
	assert.ErrorContains(t, err, "broker down")
	assert.Equal(t, []string{TopicCart}, ok.topics)
	assert.Equal(t, []string{TopicCart}, bad.topics)
}

func TestOnlyTopics(t *testing.T) {
	rec := &recorder{}
	p := OnlyTopics(rec, TopicOrder)

	require.NoError(t, p.PublishEvent(context.Background(), TopicProduct, "1", nil))
	require.NoError(t, p.PublishEvent(context.Background(), TopicOrder, "u1", nil))
	assert.Equal(t, []string{TopicOrder}, rec.topics)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.PublishEvent(context.Background(), TopicOrder, "k", nil))
}
