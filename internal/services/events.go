package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventDispatcher forwards usage events to webhook subscribers.
type EventDispatcher interface {
	Dispatch(evt models.UsageEvent)
}

const kafkaPublishTimeout = 10 * time.Second

// UsageEventPublisher publishes usage events to Kafka and webhooks.
// Kafka writes run in the background so a slow broker never holds up a request.
type UsageEventPublisher struct {
	kafkaWriter KafkaWriter
	dispatcher  EventDispatcher
	timeout     time.Duration
	wg          sync.WaitGroup
}

// NewUsageEventPublisher creates a publisher. Either sink may be nil.
func NewUsageEventPublisher(kafkaWriter KafkaWriter, dispatcher EventDispatcher) *UsageEventPublisher {
	return &UsageEventPublisher{kafkaWriter: kafkaWriter, dispatcher: dispatcher, timeout: kafkaPublishTimeout}
}

// Publish sends evt to every configured sink without waiting for Kafka.
// Failures are logged only.
func (p *UsageEventPublisher) Publish(ctx context.Context, evt models.UsageEvent) {
	p.publishKafka(ctx, evt)
	if p.dispatcher != nil {
		p.dispatcher.Dispatch(evt)
	}
}

func (p *UsageEventPublisher) publishKafka(ctx context.Context, evt models.UsageEvent) {
	if p.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event", evt.Event, "image_id", evt.ImageID)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal usage event for Kafka", "event", evt.Event, "error", err)
		return
	}

	key := evt.ImageID
	if key == "" {
		key = evt.UserID
	}
	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	// The write outlives the request, so it keeps ctx values but not its cancellation.
	ctx = context.WithoutCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
			logger.Log.Errorw("Failed to publish usage event to Kafka", "event", evt.Event, "image_id", evt.ImageID, "error", err)
		} else {
			logger.Log.Infow("Usage event published to Kafka", "event", evt.Event, "image_id", evt.ImageID, "cost", evt.Cost)
		}
	}()
}

// Wait blocks until every started Kafka write has finished.
func (p *UsageEventPublisher) Wait() {
	p.wg.Wait()
}

// Close waits for pending writes and closes the Kafka writer if there is one.
func (p *UsageEventPublisher) Close() error {
	p.Wait()
	if p.kafkaWriter == nil {
		return nil
	}
	return p.kafkaWriter.Close()
}
