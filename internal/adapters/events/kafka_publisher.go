package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"storyrun-service/internal/platform/obs"
	"storyrun-service/internal/ports"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of kafka.Writer used by the publisher.
// It allows a mock writer in unit tests.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes run events as JSON messages keyed by universe.
type KafkaPublisher struct {
	writer MessageWriter
	topic  string
}

func NewKafkaPublisher(broker, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
	}

	log.Printf("Kafka publisher configured broker=%s topic=%s", broker, topic)
	return &KafkaPublisher{writer: w, topic: topic}
}

func NewKafkaPublisherWithWriter(w MessageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: w, topic: topic}
}

func (p *KafkaPublisher) PublishRunSubmitted(ctx context.Context, evt ports.RunSubmittedEvent) (err error) {
	defer obs.Time(ctx, "kafka.PublishRunSubmitted")(&err)

	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal run submitted event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.Universe),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("run.submitted")},
			{Key: "req_id", Value: []byte(obs.RequestID(ctx))},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish run submitted topic=%s: %w", p.topic, err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishRunSubmitted(ctx context.Context, evt ports.RunSubmittedEvent) error {
	return nil
}
