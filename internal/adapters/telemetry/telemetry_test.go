package telemetry_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gqltag/internal/adapters/telemetry"
)

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(_ error) {}

func TestOTelTracer_SpanCompletionIsLogged(t *testing.T) {
	log := &recordingLogger{}
	tracer := telemetry.NewOTelTracer("test", log)
	defer func() {
		_ = tracer.Shutdown(context.Background())
	}()

	ctx, span := tracer.Start(context.Background(), "scan")
	require.NotNil(t, ctx)
	span.SetAttribute("files", 3)
	span.End()

	require.Len(t, log.infos, 1)
	assert.Contains(t, log.infos[0], "scan completed in")
	assert.Empty(t, log.warns)
}

func TestOTelTracer_FailedSpanIsWarned(t *testing.T) {
	log := &recordingLogger{}
	tracer := telemetry.NewOTelTracer("test", log)
	defer func() {
		_ = tracer.Shutdown(context.Background())
	}()

	_, span := tracer.Start(context.Background(), "scan")
	span.RecordError(errors.New("3 files failed"))
	span.End()

	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "scan failed after")
	assert.Contains(t, log.warns[0], "3 files failed")
	assert.Empty(t, log.infos)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "anything")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
