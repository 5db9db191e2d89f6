package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"feedback_service/internal/domain"
	"feedback_service/internal/testutils"
	"feedback_service/pkg/retry"
)

func TestPublishFeedbackEvent(t *testing.T) {
	producer := new(testutils.MockKafkaProducer)
	publisher := NewKafkaPublisher(producer, Config{}, clockwork.NewFakeClock())

	event := domain.FeedbackEvent{
		Type:       domain.FeedbackEventSubmitted,
		FeedbackID: uuid.New(),
	}
	producer.On("Send", mock.Anything, DefaultFeedbackTopic, event.FeedbackID.String(), event).Return(nil)

	require.NoError(t, publisher.PublishFeedbackEvent(context.Background(), event))
	producer.AssertExpectations(t)
}

func TestPublishBacklog(t *testing.T) {
	producer := new(testutils.MockKafkaProducer)
	publisher := NewKafkaPublisher(producer, Config{BacklogTopic: "backlog"}, clockwork.NewFakeClock())

	digest := domain.BacklogDigest{Count: 3}
	producer.On("Send", mock.Anything, "backlog", "", digest).Return(nil)

	require.NoError(t, publisher.PublishBacklog(context.Background(), digest))
	producer.AssertExpectations(t)
}

func TestPublisherOpensCircuit(t *testing.T) {
	clock := clockwork.NewFakeClock()
	producer := new(testutils.MockKafkaProducer)
	publisher := NewKafkaPublisher(producer, Config{FailureThreshold: 2, ResetTimeout: time.Minute}, clock)

	brokerErr := errors.New("broker unavailable")
	producer.On("Send", mock.Anything, DefaultFeedbackTopic, mock.Anything, mock.Anything).Return(brokerErr).Twice()

	event := domain.FeedbackEvent{Type: domain.FeedbackEventEdited, FeedbackID: uuid.New()}
	assert.ErrorIs(t, publisher.PublishFeedbackEvent(context.Background(), event), brokerErr)
	assert.ErrorIs(t, publisher.PublishFeedbackEvent(context.Background(), event), brokerErr)

	err := publisher.PublishFeedbackEvent(context.Background(), event)
	assert.ErrorIs(t, err, retry.ErrCircuitOpen)
	producer.AssertNumberOfCalls(t, "Send", 2)

	clock.Advance(2 * time.Minute)
	producer.On("Send", mock.Anything, DefaultFeedbackTopic, mock.Anything, mock.Anything).Return(nil).Once()
	assert.NoError(t, publisher.PublishFeedbackEvent(context.Background(), event))
	producer.AssertNumberOfCalls(t, "Send", 3)
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher()
	assert.NoError(t, p.PublishFeedbackEvent(context.Background(), domain.FeedbackEvent{}))
	assert.NoError(t, p.PublishBacklog(context.Background(), domain.BacklogDigest{}))
}
