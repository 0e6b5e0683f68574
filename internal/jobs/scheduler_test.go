package jobs

import (
	"bytes"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonOverlapping_SkipsTickWhilePassRuns(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	job := nonOverlapping(logger, func() {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
	})

	done := make(chan struct{})
	go func() {
		job.Run()
		close(done)
	}()
	<-started

	job.Run()
	assert.Equal(t, int32(1), calls.Load())
	assert.Contains(t, buf.String(), "cron skip")

	close(release)
	<-done

	job.Run()
	assert.Equal(t, int32(2), calls.Load())
}

func TestNonOverlapping_RecoversPanickingPass(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	job := nonOverlapping(logger, func() { panic("boom") })

	assert.NotPanics(t, job.Run)
	assert.Contains(t, buf.String(), "cron panic")
	assert.Contains(t, buf.String(), "boom")
}
