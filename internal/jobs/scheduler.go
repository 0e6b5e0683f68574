package jobs

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// cronLogger routes cron's own messages into slog. Skipped ticks are debug records.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron "+msg, append(keysAndValues, "error", err)...)
}

func newScheduler(logger *slog.Logger) *cron.Cron {
	return cron.New(cron.WithSeconds(), cron.WithLogger(cronLogger{logger: logger}))
}

// nonOverlapping wraps a pass so that a tick firing while the previous pass
// still runs is dropped, and a panicking pass is logged instead of killing
// the scheduler goroutine.
func nonOverlapping(logger *slog.Logger, run func()) cron.Job {
	l := cronLogger{logger: logger}
	return cron.NewChain(cron.Recover(l), cron.SkipIfStillRunning(l)).Then(cron.FuncJob(run))
}
