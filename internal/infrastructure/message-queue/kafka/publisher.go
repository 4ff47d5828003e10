package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher writes domain events to a topic, retrying with a linear backoff.
// Calls go through a circuit breaker so a dead broker fails fast.
type Publisher struct {
	writer     messageWriter
	cb         *gobreaker.CircuitBreaker[[]byte]
	maxRetries int
	backoff    time.Duration
}

func CreatePublisher(writer messageWriter, cb *gobreaker.CircuitBreaker[[]byte]) *Publisher {
	return &Publisher{writer: writer, cb: cb, maxRetries: 3, backoff: time.Second}
}

func (p *Publisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) (err error) {
	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	for i := 0; i < p.maxRetries; i++ {
		_, err = p.cb.Execute(func() ([]byte, error) {
			return nil, p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: jsonMsg})
		})
		if err == nil {
			return nil
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Str("event_type", msg.EventType).Int("attempt", i+1).Msg("")

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) || i == p.maxRetries-1 {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.backoff * time.Duration(i+1)):
		}
	}

	return err
}

func (p *Publisher) Close() error {
	if closer, ok := p.writer.(interface{ Close() error }); ok {
		return closer.Close()
	}

	return nil
}

// DiscardPublisher is used when no broker is configured.
type DiscardPublisher struct{}

func (DiscardPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	log.Ctx(ctx).Debug().Str("component", "Publish").Str("event_type", msg.EventType).Msg("broker not configured, event dropped")
	return nil
}
