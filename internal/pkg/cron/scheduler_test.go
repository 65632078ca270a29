package cron

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	calls atomic.Int32
	err   error
}

func (l *countingLoader) Load(ctx context.Context) error {
	l.calls.Add(1)
	return l.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestScheduler_DisabledJob(t *testing.T) {
	s := NewScheduler(quietLogger())
	NewRefreshJobs(&countingLoader{}, 0).RegisterJobs(s)

	assert.Equal(t, 0, s.Len())
}

func TestScheduler_RunOnce(t *testing.T) {
	loader := &countingLoader{err: errors.New("Network Error")}
	s := NewScheduler(quietLogger())
	NewRefreshJobs(loader, time.Minute).RegisterJobs(s)

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestScheduler_Ticks(t *testing.T) {
	loader := &countingLoader{}
	s := NewScheduler(quietLogger())
	NewRefreshJobs(loader, 10*time.Millisecond).RegisterJobs(s)
	require.Equal(t, 1, s.Len())

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return loader.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	stopped := loader.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, loader.calls.Load())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler(quietLogger())
	s.Stop()
}
