// Package audit publishes resource-lifecycle records for every successful
// mutation. The trail is observational: a publish failure is logged and
// swallowed, it never fails the request that produced it.
package audit

import (
	"context"
	"time"

	"github.com/Rad0130/event-planner-server/pkg/kafka"
	"github.com/Rad0130/event-planner-server/pkg/logger"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type Entry struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ResourceID string    `json:"resourceId"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Recorder interface {
	Record(ctx context.Context, entity, action, resourceID string)
	Close() error
}

type kafkaRecorder struct {
	producer *kafka.Producer
	source   string
	log      *logger.Logger
}

func NewKafkaRecorder(producer *kafka.Producer, source string, log *logger.Logger) Recorder {
	return &kafkaRecorder{
		producer: producer,
		source:   source,
		log:      log,
	}
}

func (r *kafkaRecorder) Record(ctx context.Context, entity, action, resourceID string) {
	entry := Entry{
		Entity:     entity,
		Action:     action,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC(),
	}

	msg := kafka.NewMessage(resourceID, entity+"."+action, r.source, entry)
	if err := r.producer.Publish(ctx, msg); err != nil {
		r.log.Warn("Failed to publish audit record",
			"entity", entity,
			"action", action,
			"resource_id", resourceID,
			"error", err,
		)
	}
}

func (r *kafkaRecorder) Close() error {
	return r.producer.Close()
}

type noopRecorder struct{}

// NewNoopRecorder is used when the audit trail is disabled.
func NewNoopRecorder() Recorder {
	return noopRecorder{}
}

func (noopRecorder) Record(context.Context, string, string, string) {}

func (noopRecorder) Close() error { return nil }
