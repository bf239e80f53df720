package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message is a Kafka record to publish: key routes the partition, value is
// the JSON payload, headers carry metadata.
type Message struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// NewMessage builds a message with a generated event id. The value is
// JSON-encoded; an encoding failure leaves Value nil, which the producer
// rejects on publish.
func NewMessage(key string, eventType string, source string, value any) Message {
	msg := Message{
		Key:       key,
		Timestamp: time.Now(),
		Headers: map[string]string{
			HeaderEventID:   uuid.NewString(),
			HeaderEventType: eventType,
			HeaderSource:    source,
		},
	}
	msg.Headers[HeaderTimestamp] = msg.Timestamp.Format(time.RFC3339)

	if data, err := json.Marshal(value); err == nil {
		msg.Value = data
	}
	return msg
}
