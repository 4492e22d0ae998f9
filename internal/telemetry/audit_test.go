package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"messenger-service/internal/mocks"
)

func TestAuditEmitterPublishesEnvelope(t *testing.T) {
	publisher := new(mocks.PublisherMock)
	emitter := NewAuditEmitter(publisher, "audit.messenger", "messenger-service", "test")

	var captured AuditEnvelope
	publisher.On("Publish", mock.Anything, "audit.messenger", mock.MatchedBy(func(event any) bool {
		envelope, ok := event.(AuditEnvelope)
		if ok {
			captured = envelope
		}
		return ok
	})).Return(nil).Once()

	userID := "42"
	emitter.Emit(context.Background(), "INFO", "user connected", "req-1", &userID)

	publisher.AssertExpectations(t)
	require.Equal(t, 1, captured.SchemaVersion)
	require.Equal(t, "audit_log", captured.EventType)
	require.Equal(t, "messenger-service", captured.Service)
	require.Equal(t, "test", captured.Environment)
	require.Equal(t, "req-1", captured.RequestID)
	require.NotNil(t, captured.UserID)
	require.Equal(t, "42", *captured.UserID)
	require.Equal(t, "INFO", captured.Payload.Level)
	require.Equal(t, "user connected", captured.Payload.Text)
	require.NotEmpty(t, captured.OccurredAt)
}

func TestAuditEmitterSwallowsPublishError(t *testing.T) {
	publisher := new(mocks.PublisherMock)
	publisher.On("Publish", mock.Anything, "audit.messenger", mock.Anything).
		Return(errors.New("broker down")).Once()

	emitter := NewAuditEmitter(publisher, "audit.messenger", "messenger-service", "test")
	emitter.Emit(context.Background(), "ERROR", "oops", "req-2", nil)

	publisher.AssertExpectations(t)
}

func TestAuditEmitterNilSafe(t *testing.T) {
	var emitter *AuditEmitter
	emitter.Emit(context.Background(), "INFO", "ignored", "req-3", nil)

	emitter = NewAuditEmitter(nil, "audit.messenger", "messenger-service", "test")
	emitter.Emit(context.Background(), "INFO", "ignored", "req-3", nil)
}
