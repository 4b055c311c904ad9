package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogUseCaseObserver_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := NewLogUseCaseObserver(zap.New(core))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "plan.toggle_topic",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"goal_id": "g1"},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "backup.import",
		Err:  errors.New("boom"),
	})

	entries := logs.All()
	require.Len(t, entries, 2)

	ok := entries[0]
	assert.Equal(t, zapcore.DebugLevel, ok.Level)
	assert.Equal(t, "service_use_case", ok.Message)
	fields := ok.ContextMap()
	assert.Equal(t, "plan.toggle_topic", fields["use_case"])
	assert.Equal(t, int64(12), fields["duration_ms"])
	assert.Equal(t, true, fields["success"])
	assert.Equal(t, "g1", fields["goal_id"])

	failed := entries[1]
	assert.Equal(t, zapcore.ErrorLevel, failed.Level)
	assert.Equal(t, "boom", failed.ContextMap()["error"])
}

func TestLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
