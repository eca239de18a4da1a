// Package events publishes committed reaction events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	kgo "github.com/segmentio/kafka-go"

	"Labeddit/internal/core/reactions"
)

// messageWriter is the subset of *kgo.Writer the publisher needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kgo.Message) error
	Close() error
}

// KafkaPublisher implements reactions.Publisher on a kafka-go writer.
// Messages are keyed by post id so events for one post stay ordered.
type KafkaPublisher struct {
	w messageWriter
}

// NewKafkaPublisher creates a publisher writing to topic on the given
// comma-separated broker list
func NewKafkaPublisher(brokers, topic string) (*KafkaPublisher, error) {
	var addrs []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}

	w := &kgo.Writer{
		Addr:         kgo.TCP(addrs...),
		Topic:        topic,
		Balancer:     &kgo.Hash{},
		RequiredAcks: kgo.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaPublisher{w: w}, nil
}

// PublishReaction implements reactions.Publisher
func (p *KafkaPublisher) PublishReaction(ctx context.Context, event reactions.Event) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write reaction event: %w", err)
	}
	return nil
}

// Close flushes pending messages and closes the writer
func (p *KafkaPublisher) Close() error { return p.w.Close() }

func encodeEvent(event reactions.Event) (kgo.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kgo.Message{}, fmt.Errorf("failed to encode reaction event: %w", err)
	}
	return kgo.Message{
		Key:   []byte(event.PostID),
		Value: value,
		Time:  event.OccurredAt,
	}, nil
}
