// Package events publishes feedback lifecycle events to Kafka.
package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"feedback_service/internal/domain"
	"feedback_service/pkg/retry"
)

const (
	DefaultFeedbackTopic = "feedback-events"
	DefaultBacklogTopic  = "moderation-backlog"

	defaultFailureThreshold = 5
	defaultResetTimeout     = 30 * time.Second
)

// Sender is the subset of the Kafka producer the publisher needs.
type Sender interface {
	Send(ctx context.Context, topic, key string, message interface{}) error
}

type Config struct {
	FeedbackTopic    string
	BacklogTopic     string
	FailureThreshold int
	ResetTimeout     time.Duration
}

// KafkaPublisher keys feedback events by feedback id. Sends go through a
// circuit breaker so a dead broker does not stall every request.
type KafkaPublisher struct {
	sender  Sender
	cfg     Config
	breaker *retry.CircuitBreaker
}

func NewKafkaPublisher(sender Sender, cfg Config, clock clockwork.Clock) *KafkaPublisher {
	if cfg.FeedbackTopic == "" {
		cfg.FeedbackTopic = DefaultFeedbackTopic
	}
	if cfg.BacklogTopic == "" {
		cfg.BacklogTopic = DefaultBacklogTopic
	}
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = defaultFailureThreshold
	}
	if cfg.ResetTimeout <= 0 {
		cfg.ResetTimeout = defaultResetTimeout
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &KafkaPublisher{
		sender:  sender,
		cfg:     cfg,
		breaker: retry.NewCircuitBreaker(cfg.FailureThreshold, cfg.ResetTimeout, clock),
	}
}

func (p *KafkaPublisher) PublishFeedbackEvent(ctx context.Context, event domain.FeedbackEvent) error {
	return p.send(ctx, p.cfg.FeedbackTopic, event.FeedbackID.String(), event)
}

func (p *KafkaPublisher) PublishBacklog(ctx context.Context, digest domain.BacklogDigest) error {
	return p.send(ctx, p.cfg.BacklogTopic, "", digest)
}

func (p *KafkaPublisher) send(ctx context.Context, topic, key string, message interface{}) error {
	err := p.breaker.Execute(func() error {
		return p.sender.Send(ctx, topic, key, message)
	})
	if errors.Is(err, retry.ErrCircuitOpen) {
		return fmt.Errorf("publish to %s skipped: %w", topic, err)
	}
	return err
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) PublishFeedbackEvent(context.Context, domain.FeedbackEvent) error {
	return nil
}

func (NoopPublisher) PublishBacklog(context.Context, domain.BacklogDigest) error {
	return nil
}
