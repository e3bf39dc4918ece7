package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	errs      []error
	fetches   int
	msgs      []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(context.Context) (kafka.Message, error) {
	r.fetches++
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		return kafka.Message{}, err
	}
	if len(r.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	msgs []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

type mockPlacer struct {
	mock.Mock
}

func (m *mockPlacer) PlaceOrder(ctx context.Context, userID string, order entities.Order) (entities.ProcessResult, error) {
	args := m.Called(ctx, userID, order)
	return args.Get(0).(entities.ProcessResult), args.Error(1)
}

func TestKafkaHandler_Consume(t *testing.T) {
	confirmed := entities.Succeeded(&entities.OrderRecord{OrderID: "o1", Total: 10}, nil)
	rejected := entities.Failed(entities.StageValidated, entities.NewItemError("x", entities.ErrInsufficientInventory))

	testCases := []struct {
		name          string
		msg           kafka.Message
		mockBehavior  func(p *mockPlacer)
		wantCommitted int
		wantDLQ       int
	}{
		{
			name: "confirmed order is committed",
			msg:  kafka.Message{Topic: "orders", Value: []byte(`{"order_id":"o1","user_id":"u1","items":[{"id":"x","quantity":1,"price":10}]}`)},
			mockBehavior: func(p *mockPlacer) {
				p.On("PlaceOrder", mock.Anything, "u1", entities.Order{
					ID:    "o1",
					Items: []entities.LineItem{{ID: "x", Quantity: 1, Price: 10}},
				}).Return(confirmed, nil).Once()
			},
			wantCommitted: 1,
		},
		{
			name: "order id falls back to message key",
			msg:  kafka.Message{Topic: "orders", Key: []byte("k1"), Value: []byte(`{"user_id":"u1","items":[{"id":"x","quantity":1,"price":10}]}`)},
			mockBehavior: func(p *mockPlacer) {
				p.On("PlaceOrder", mock.Anything, "u1", mock.MatchedBy(func(o entities.Order) bool {
					return o.ID == "k1"
				})).Return(confirmed, nil).Once()
			},
			wantCommitted: 1,
		},
		{
			name: "rejected order is committed, not dead-lettered",
			msg:  kafka.Message{Topic: "orders", Value: []byte(`{"order_id":"o2","user_id":"u1","items":[{"id":"x","quantity":9,"price":10}]}`)},
			mockBehavior: func(p *mockPlacer) {
				p.On("PlaceOrder", mock.Anything, "u1", mock.Anything).Return(rejected, nil).Once()
			},
			wantCommitted: 1,
		},
		{
			name:          "malformed json goes to DLQ",
			msg:           kafka.Message{Topic: "orders", Value: []byte(`{"order_id":`)},
			mockBehavior:  func(*mockPlacer) {},
			wantCommitted: 1,
			wantDLQ:       1,
		},
		{
			name:          "invalid order goes to DLQ",
			msg:           kafka.Message{Topic: "orders", Value: []byte(`{"order_id":"o3","items":[{"id":"x","quantity":0}]}`)},
			mockBehavior:  func(*mockPlacer) {},
			wantCommitted: 1,
			wantDLQ:       1,
		},
		{
			name: "unavailable state is left for redelivery",
			msg:  kafka.Message{Topic: "orders", Value: []byte(`{"order_id":"o4","user_id":"u1","items":[{"id":"x","quantity":1,"price":1}]}`)},
			mockBehavior: func(p *mockPlacer) {
				p.On("PlaceOrder", mock.Anything, "u1", mock.Anything).Return(entities.ProcessResult{}, errors.New("timeout")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			placer := &mockPlacer{}
			tc.mockBehavior(placer)
			reader := &fakeReader{msgs: []kafka.Message{tc.msg}}
			dlq := &fakeWriter{}
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			h := newKafkaHandler(logger, reader, dlq, placer)
			h.Consume(context.Background())

			assert.Len(t, reader.committed, tc.wantCommitted)
			require.Len(t, dlq.msgs, tc.wantDLQ)
			if tc.wantDLQ > 0 {
				assert.Equal(t, "orders-dlq", dlq.msgs[0].Topic)
				assert.Equal(t, tc.msg.Value, dlq.msgs[0].Value)
			}
			placer.AssertExpectations(t)
		})
	}
}

type failingReader struct {
	fakeReader
}

func (r *failingReader) FetchMessage(context.Context) (kafka.Message, error) {
	r.fetches++
	return kafka.Message{}, errors.New("broker unavailable")
}

func TestKafkaHandler_ConsumeRetriesFetchErrors(t *testing.T) {
	placer := &mockPlacer{}
	placer.On("PlaceOrder", mock.Anything, "u1", mock.Anything).
		Return(entities.Succeeded(&entities.OrderRecord{OrderID: "o1"}, nil), nil).Once()

	reader := &fakeReader{
		errs: []error{errors.New("broker unavailable"), context.DeadlineExceeded},
		msgs: []kafka.Message{{Topic: "orders", Value: []byte(`{"order_id":"o1","user_id":"u1","items":[{"id":"x","quantity":1,"price":1}]}`)}},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := newKafkaHandler(logger, reader, &fakeWriter{}, placer)
	h.fetchBackoff = time.Millisecond

	h.Consume(context.Background())

	// two failures, one message, then EOF
	assert.Equal(t, 4, reader.fetches)
	assert.Len(t, reader.committed, 1)
	placer.AssertExpectations(t)
}

func TestKafkaHandler_ConsumeStopsDuringBackoff(t *testing.T) {
	reader := &failingReader{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := newKafkaHandler(logger, reader, &fakeWriter{}, &mockPlacer{})
	h.fetchBackoff = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Consume(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
	assert.Equal(t, 1, reader.fetches)
}
