// Package service provides the message bus transports audit events are sent through.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"gocloud.dev/pubsub"

	// Register pubsub drivers
	_ "gocloud.dev/pubsub/awssnssqs"
	_ "gocloud.dev/pubsub/azuresb"
	_ "gocloud.dev/pubsub/gcppubsub"
	_ "gocloud.dev/pubsub/mempubsub"

	eventDomain "github.com/allisson/resourceapi/internal/event/domain"
)

// Sender delivers a single event to the message bus.
type Sender interface {
	Send(ctx context.Context, event *eventDomain.Event) error
	Close(ctx context.Context) error
}

// OpenSender opens the transport named by url. redis:// and rediss:// URLs publish on the
// Redis channel named after the event channel; any other scheme is opened as a
// gocloud.dev/pubsub topic (mem://, awssns://, awssqs://, gcppubsub://, azuresb://).
func OpenSender(ctx context.Context, url string) (Sender, error) {
	if strings.HasPrefix(url, "redis://") || strings.HasPrefix(url, "rediss://") {
		opts, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		return NewRedisSender(redis.NewClient(opts)), nil
	}

	topic, err := pubsub.OpenTopic(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open topic: %w", err)
	}
	return NewPubSubSender(topic), nil
}

// PubSubSender sends events as JSON messages on a gocloud.dev/pubsub topic.
type PubSubSender struct {
	topic *pubsub.Topic
}

// NewPubSubSender creates a PubSubSender for an open topic. The sender owns the topic.
func NewPubSubSender(topic *pubsub.Topic) *PubSubSender {
	return &PubSubSender{topic: topic}
}

// Send publishes the event with channel and topic copied into the message metadata.
func (s *PubSubSender) Send(ctx context.Context, event *eventDomain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return s.topic.Send(ctx, &pubsub.Message{
		Body: body,
		Metadata: map[string]string{
			"channel": event.Channel,
			"topic":   event.Topic,
		},
	})
}

// Close flushes and shuts down the topic.
func (s *PubSubSender) Close(ctx context.Context) error {
	return s.topic.Shutdown(ctx)
}

// RedisSender publishes events on Redis pub/sub.
type RedisSender struct {
	client *redis.Client
}

// NewRedisSender creates a RedisSender. The sender owns the client.
func NewRedisSender(client *redis.Client) *RedisSender {
	return &RedisSender{client: client}
}

// Send publishes the JSON encoded event on the Redis channel named after event.Channel.
func (s *RedisSender) Send(ctx context.Context, event *eventDomain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return s.client.Publish(ctx, event.Channel, body).Err()
}

// Close closes the Redis client.
func (s *RedisSender) Close(ctx context.Context) error {
	return s.client.Close()
}
