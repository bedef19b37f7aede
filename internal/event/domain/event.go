// Package domain defines the audit event published for data operations and authorization failures.
package domain

import (
	"encoding/json"
	"time"
)

// ChannelDatabase is the channel every data operation is published on.
const ChannelDatabase = "database"

// Event topics.
const (
	TopicCreate = "create"
	TopicRead   = "read"
	TopicUpdate = "update"
	TopicDelete = "delete"
	TopicError  = "error"
)

// Event is a notification sent to the message bus. Payload is encoded when the event is
// published so later mutation of the caller's value cannot race with delivery.
type Event struct {
	Channel    string          `json:"channel"`
	Topic      string          `json:"topic"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}
