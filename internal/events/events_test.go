package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("no deadline")
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestProducer_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w}

	ev := New("product_created", map[string]any{"product_id": 1})
	require.NoError(t, p.Publish(context.Background(), TopicProduct, "1", ev))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, TopicProduct, msg.Topic)
	assert.Equal(t, "1", string(msg.Key))

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "product_created", got["type"])
	assert.Equal(t, ev.ID, got["event_id"])
	assert.NotEmpty(t, got["event_id"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestProducer_PublishError(t *testing.T) {
	p := &Producer{writer: &fakeWriter{err: errors.New("broker down")}}
	err := p.Publish(context.Background(), TopicUser, "1", New("user_registered", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user_events")
}

func TestFromBrokers(t *testing.T) {
	_, ok := FromBrokers(nil).(Nop)
	assert.True(t, ok)

	p, ok := FromBrokers([]string{"localhost:9092"}).(*Producer)
	require.True(t, ok)
	require.NoError(t, p.Close())
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), TopicOrder, "k", New("order_created", nil)))
	assert.NoError(t, p.Close())
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New("x", nil)
	b := New("x", nil)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewProducer_FlushesSingleMessages(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"})
	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)

	assert.Equal(t, batchTimeout, w.BatchTimeout)
	assert.LessOrEqual(t, w.BatchTimeout, 50*time.Millisecond)
	assert.Equal(t, publishTimeout, w.WriteTimeout)
	require.NoError(t, p.Close())
}
