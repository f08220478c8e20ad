package rmqconsumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pim-api/config"
)

type fakeAcker struct {
	acked, nacked int
	requeued      bool
}

func (f *fakeAcker) Ack(uint64, bool) error { f.acked++; return nil }
func (f *fakeAcker) Nack(_ uint64, _ bool, requeue bool) error {
	f.nacked++
	f.requeued = requeue
	return nil
}
func (f *fakeAcker) Reject(uint64, bool) error { return nil }

func Test_delivery_Table(t *testing.T) {
	cases := []struct {
		name       string
		handlerErr error
		wantAck    int
		wantNack   int
	}{
		{"handled -> ack", nil, 1, 0},
		{"handler error -> nack", errors.New("malformed event"), 0, 1},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var got []byte
			c := New(config.MQ{}, zap.NewNop(), func(_ context.Context, body []byte) error {
				got = body
				return tt.handlerErr
			})

			acker := &fakeAcker{}
			c.delivery(context.Background(), amqp091.Delivery{
				Acknowledger: acker,
				RoutingKey:   "uploaded",
				Body:         []byte(`{"event_action":"uploaded"}`),
			})

			assert.Equal(t, `{"event_action":"uploaded"}`, string(got))
			assert.Equal(t, tt.wantAck, acker.acked)
			assert.Equal(t, tt.wantNack, acker.nacked)
			assert.False(t, acker.requeued)
		})
	}
}

func TestDeliveryWorker_StopsOnClosedChannel(t *testing.T) {
	ch := make(chan amqp091.Delivery, 1)
	acker := &fakeAcker{}
	ch <- amqp091.Delivery{Acknowledger: acker, Body: []byte("{}")}
	close(ch)

	c := New(config.MQ{}, zap.NewNop(), func(context.Context, []byte) error { return nil })
	c.chDelivery = ch

	done := make(chan struct{})
	go func() {
		c.DeliveryWorker(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Equal(t, 1, acker.acked)
}

func TestDeliveryWorker_StopsOnCancel(t *testing.T) {
	c := New(config.MQ{}, zap.NewNop(), func(context.Context, []byte) error { return nil })
	c.chDelivery = make(chan amqp091.Delivery)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c.DeliveryWorker(ctx)
}

func TestConnect_InvalidDSN(t *testing.T) {
	c := New(config.MQ{}, zap.NewNop(), nil)

	err := c.Connect("amqp://bad:://dsn")
	require.Error(t, err)
	require.Nil(t, c.chConsume)
	require.Nil(t, c.conn)
}
