package app

import (
	"fmt"
	"sync"

	eventService "github.com/allisson/resourceapi/internal/event/service"
	eventUseCase "github.com/allisson/resourceapi/internal/event/usecase"
)

type eventComponents struct {
	eventSender    eventService.Sender
	eventPublisher eventUseCase.Dispatcher

	eventSenderInit    sync.Once
	eventPublisherInit sync.Once
}

// EventSender returns the message bus transport named by EVENT_TOPIC_URL.
func (c *Container) EventSender() (eventService.Sender, error) {
	return lazy(c, &c.eventSenderInit, "eventSender", &c.eventSender, c.initEventSender)
}

// EventPublisher returns the publisher every data operation reports to. Its Start method
// must run for queued events to leave the process. When events are disabled it discards
// everything.
func (c *Container) EventPublisher() (eventUseCase.Dispatcher, error) {
	return lazy(c, &c.eventPublisherInit, "eventPublisher", &c.eventPublisher, c.initEventPublisher)
}

func (c *Container) initEventSender() (eventService.Sender, error) {
	sender, err := eventService.OpenSender(c.ctx, c.config.EventTopicURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open event sender: %w", err)
	}
	return sender, nil
}

func (c *Container) initEventPublisher() (eventUseCase.Dispatcher, error) {
	if !c.config.EventEnabled {
		return eventUseCase.NewNoOpPublisher(), nil
	}

	sender, err := c.EventSender()
	if err != nil {
		return nil, err
	}

	eventMetrics, err := c.EventMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get event metrics for event publisher: %w", err)
	}

	return eventUseCase.NewAsyncPublisher(sender, c.config.EventQueueSize, eventMetrics, c.Logger()), nil
}
