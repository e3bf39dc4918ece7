package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestKafkaTransport_Send(t *testing.T) {
	now := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	w := &recordingWriter{}
	tr := newKafkaTransport(w, func() time.Time { return now })

	err := tr.Send(context.Background(), Delivery{
		OrderID:      "order-1",
		Notification: entities.Notification{Type: entities.NotificationSMS, Recipient: "+15550100"},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	assert.Equal(t, "+15550100", string(w.msgs[0].Key))

	var msg Message
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &msg))
	assert.Equal(t, Message{OrderID: "order-1", Type: "sms", Recipient: "+15550100", CreatedAt: now}, msg)
}

func TestKafkaTransport_SendError(t *testing.T) {
	writeErr := errors.New("leader not available")
	tr := newKafkaTransport(&recordingWriter{err: writeErr}, time.Now)

	err := tr.Send(context.Background(), Delivery{OrderID: "order-1"})

	assert.ErrorIs(t, err, writeErr)
}
