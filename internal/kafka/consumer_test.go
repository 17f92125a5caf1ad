package kafka

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReader struct {
	mock.Mock
}

func (m *MockReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).(kafka.Message), args.Error(1)
}

func (m *MockReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockReader) Close() error {
	return m.Called().Error(0)
}

func TestConsumer_CommitsHandledMessages(t *testing.T) {
	reader := &MockReader{}
	consumer := NewConsumerWithReader(reader)
	ctx := context.Background()

	first := kafka.Message{Offset: 1, Value: []byte(`{"type":"airport_added"}`)}
	reader.On("FetchMessage", ctx).Return(first, nil).Once()
	reader.On("CommitMessages", ctx, []kafka.Message{first}).Return(nil).Once()
	reader.On("FetchMessage", ctx).Return(kafka.Message{}, io.EOF).Once()

	var handled []int64
	err := consumer.Consume(ctx, func(_ context.Context, msg kafka.Message) error {
		handled = append(handled, msg.Offset)
		return nil
	})

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []int64{1}, handled)
	reader.AssertExpectations(t)
}

func TestConsumer_HandlerErrorSkipsCommit(t *testing.T) {
	reader := &MockReader{}
	consumer := NewConsumerWithReader(reader)
	ctx := context.Background()

	reader.On("FetchMessage", ctx).Return(kafka.Message{Offset: 7}, nil).Once()

	handlerErr := errors.New("handler failed")
	err := consumer.Consume(ctx, func(context.Context, kafka.Message) error { return handlerErr })

	assert.Equal(t, handlerErr, err)
	reader.AssertExpectations(t)
	reader.AssertNotCalled(t, "CommitMessages", mock.Anything, mock.Anything)
}

func TestConsumer_CloseNil(t *testing.T) {
	var c *Consumer
	assert.NoError(t, c.Close())
}
