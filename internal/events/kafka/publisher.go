package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	interfaces "github.com/sheikh-saqib/gpa-calculator/internal/interfaces"
)

// Publisher writes JSON-encoded events to kafka. The topic is chosen per
// message, so a single writer serves every event type.
type Publisher struct {
	writer *kafka.Writer
}

// BatchTimeout bounds how long a synchronous Publish waits for its batch to
// fill; events are published one at a time so batches never fill.
const BatchTimeout = 10 * time.Millisecond

func NewPublisher(brokers []string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchSize:              1,
			BatchTimeout:           BatchTimeout,
			WriteTimeout:           5 * time.Second,
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, topic string, event any) error {
	msg, err := newMessage(topic, event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// keyed is implemented by events that should land on a stable partition.
type keyed interface {
	EventKey() string
}

func newMessage(topic string, event any) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	msg := kafka.Message{
		Topic: topic,
		Value: data,
	}
	if k, ok := event.(keyed); ok && k.EventKey() != "" {
		msg.Key = []byte(k.EventKey())
	}
	return msg, nil
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
