// Package service defines contracts for infrastructure collaborators the
// application layer depends on.
package service

import (
	"context"
	"time"
)

// DomainEventMessage is the transport form of a committed domain event.
// The command handlers build one per recorded event after the unit of work
// commits; publishing failures are logged, never surfaced to the caller.
type DomainEventMessage struct {
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	EventType   string         `json:"event_type"`
	AggregateID string         `json:"aggregate_id"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// EventPublisher defines the interface for publishing committed domain
// events to a message queue for downstream notification.
type EventPublisher interface {
	// PublishDomainEvent publishes one committed domain event.
	PublishDomainEvent(ctx context.Context, event *DomainEventMessage) error

	// Close releases any resources held by the publisher.
	Close() error
}
