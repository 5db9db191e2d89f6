package logger

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"feedback_service/pkg/ctxdata"
)

func TestNew(t *testing.T) {
	l, err := New("debug", false)
	require.NoError(t, err)
	assert.NotNil(t, l.ZapLogger)

	_, err = New("loud", true)
	assert.Error(t, err)
}

func TestContextLogging_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{ZapLogger: zap.New(core)}

	ctx := ctxdata.WithTraceID(context.Background(), "abc-123")
	l.InfoContext(ctx, "hello", zap.String("k", "v"))
	l.ErrorContext(context.Background(), "no trace")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc-123", entries[0].ContextMap()[requestID])
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
	_, ok := entries[1].ContextMap()[requestID]
	assert.False(t, ok)
}

func TestContextLogging_AddsCaller(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{ZapLogger: zap.New(core)}

	id := uuid.New()
	ctx := ctxdata.WithCaller(context.Background(), ctxdata.Caller{UserID: id, Role: "admin"})
	l.WarnContext(ctx, "moderated")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, id.String(), entries[0].ContextMap()[userID])
}

func TestContextWithLogger(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	l := NewNop()
	got, ok := FromContext(ContextWithLogger(context.Background(), l))
	assert.True(t, ok)
	assert.Same(t, l, got)
}
