// Package usecase implements best-effort publication of audit events.
package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	eventDomain "github.com/allisson/resourceapi/internal/event/domain"
	"github.com/allisson/resourceapi/internal/metrics"
)

// drainTimeout bounds how long queued events are flushed after shutdown begins.
const drainTimeout = 5 * time.Second

// Publisher emits an event without blocking the caller and without reporting failures.
type Publisher interface {
	Publish(ctx context.Context, channel, topic string, payload any)
}

// Sender delivers a single event to the message bus.
type Sender interface {
	Send(ctx context.Context, event *eventDomain.Event) error
}

// Dispatcher is a Publisher backed by a queue drained by Start.
type Dispatcher interface {
	Publisher
	Start(ctx context.Context) error
}

// AsyncPublisher queues events in memory and sends them from a single goroutine.
// A full queue drops the event.
type AsyncPublisher struct {
	queue   chan *eventDomain.Event
	sender  Sender
	metrics metrics.EventMetrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewAsyncPublisher creates an AsyncPublisher with a queue of the given capacity.
func NewAsyncPublisher(
	sender Sender,
	queueSize int,
	eventMetrics metrics.EventMetrics,
	logger *slog.Logger,
) *AsyncPublisher {
	if queueSize < 1 {
		queueSize = 1
	}
	return &AsyncPublisher{
		queue:   make(chan *eventDomain.Event, queueSize),
		sender:  sender,
		metrics: eventMetrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Publish encodes the payload and enqueues the event. It never blocks.
func (p *AsyncPublisher) Publish(ctx context.Context, channel, topic string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to encode event payload",
			slog.String("channel", channel),
			slog.String("topic", topic),
			slog.Any("error", err),
		)
		p.metrics.RecordEvent(ctx, topic, metrics.EventDropped)
		return
	}

	event := &eventDomain.Event{
		Channel:    channel,
		Topic:      topic,
		Payload:    body,
		OccurredAt: p.now().UTC(),
	}

	select {
	case p.queue <- event:
	default:
		p.logger.Warn("event queue full, dropping event",
			slog.String("channel", channel),
			slog.String("topic", topic),
		)
		p.metrics.RecordEvent(ctx, topic, metrics.EventDropped)
	}
}

// Start sends queued events until ctx is cancelled, then flushes what is left within
// drainTimeout. It returns nil on shutdown.
func (p *AsyncPublisher) Start(ctx context.Context) error {
	p.logger.Info("starting event dispatcher", slog.Int("queue_size", cap(p.queue)))

	for {
		select {
		case <-ctx.Done():
			p.drain()
			p.logger.Info("stopping event dispatcher")
			return nil
		case event := <-p.queue:
			p.send(ctx, event)
		}
	}
}

func (p *AsyncPublisher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case event := <-p.queue:
			p.send(ctx, event)
		default:
			return
		}
	}
}

func (p *AsyncPublisher) send(ctx context.Context, event *eventDomain.Event) {
	if err := p.sender.Send(ctx, event); err != nil {
		p.logger.Error("failed to send event",
			slog.String("channel", event.Channel),
			slog.String("topic", event.Topic),
			slog.Any("error", err),
		)
		p.metrics.RecordEvent(ctx, event.Topic, metrics.EventFailed)
		return
	}
	p.metrics.RecordEvent(ctx, event.Topic, metrics.EventPublished)
}

// NoOpPublisher discards every event. Used when event publication is disabled.
type NoOpPublisher struct{}

// NewNoOpPublisher creates a NoOpPublisher.
func NewNoOpPublisher() *NoOpPublisher {
	return &NoOpPublisher{}
}

// Publish does nothing.
func (n *NoOpPublisher) Publish(ctx context.Context, channel, topic string, payload any) {}

// Start blocks until ctx is cancelled.
func (n *NoOpPublisher) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}
