package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	circuitbreaker "github.com/lalitaditya04/EcomStore-Platform/internal/infrastructure/circuit-breaker"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	failures int
	calls    int
	written  []kafka.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.calls <= w.failures {
		return errors.New("broker unavailable")
	}

	w.written = append(w.written, msgs...)
	return nil
}

func TestPublishRetriesUntilWritten(t *testing.T) {
	writer := &fakeWriter{failures: 1}
	publisher := CreatePublisher(writer, circuitbreaker.CreateCircuitBreaker("test"))
	publisher.backoff = time.Millisecond

	err := publisher.Publish(context.Background(), "p1", dto.KafkaMessage{
		EventType: dto.EventProductDeleted,
		Data:      dto.ProductDeleted{ID: "p1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, writer.calls)
	require.Len(t, writer.written, 1)
	assert.Equal(t, "p1", string(writer.written[0].Key))

	var decoded dto.KafkaMessage
	require.NoError(t, json.Unmarshal(writer.written[0].Value, &decoded))
	assert.Equal(t, dto.EventProductDeleted, decoded.EventType)
}

func TestPublishGivesUpAfterMaxRetries(t *testing.T) {
	writer := &fakeWriter{failures: 10}
	publisher := CreatePublisher(writer, circuitbreaker.CreateCircuitBreaker("test"))
	publisher.backoff = time.Millisecond

	err := publisher.Publish(context.Background(), "p1", dto.KafkaMessage{EventType: dto.EventProductCreated})
	assert.Error(t, err)
	assert.Empty(t, writer.written)
	assert.LessOrEqual(t, writer.calls, 3)
}

func TestPublishFailsFastWhenBreakerOpen(t *testing.T) {
	writer := &fakeWriter{failures: 10}
	publisher := CreatePublisher(writer, circuitbreaker.CreateCircuitBreaker("test"))
	publisher.backoff = time.Millisecond

	err := publisher.Publish(context.Background(), "p1", dto.KafkaMessage{EventType: dto.EventProductCreated})
	require.Error(t, err)
	require.Equal(t, 3, writer.calls)

	publisher.backoff = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err = publisher.Publish(ctx, "p1", dto.KafkaMessage{EventType: dto.EventProductUpdated})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, writer.calls)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPublishDoesNotWaitAfterLastAttempt(t *testing.T) {
	writer := &fakeWriter{failures: 10}
	publisher := CreatePublisher(writer, circuitbreaker.CreateCircuitBreaker("test"))
	publisher.maxRetries = 1
	publisher.backoff = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := publisher.Publish(ctx, "p1", dto.KafkaMessage{EventType: dto.EventProductCreated})
	require.Error(t, err)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "broker unavailable", err.Error())
	assert.Equal(t, 1, writer.calls)
}
