package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created,
// e.g. "Generated 100 nodes (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports generator and store events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks { return &logHooks{logger: l} }

func (h *logHooks) OnGenerate(n, ones int, d time.Duration) {
	h.logger.Debug("generated matrix", "nodes", n, "ones", ones, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnGet(_ context.Context, backend, key string, hit bool, d time.Duration, err error) {
	h.logStore("get", backend, key, d, err, "hit", hit)
}

func (h *logHooks) OnPut(_ context.Context, backend, key string, size int, d time.Duration, err error) {
	h.logStore("put", backend, key, d, err, "bytes", size)
}

func (h *logHooks) OnDelete(_ context.Context, backend, key string, d time.Duration, err error) {
	h.logStore("delete", backend, key, d, err)
}

func (h *logHooks) logStore(op, backend, key string, d time.Duration, err error, extra ...any) {
	kv := append([]any{"backend", backend, "key", key, "duration", d.Round(time.Microsecond)}, extra...)
	if err != nil {
		h.logger.Warn("store "+op+" failed", append(kv, "err", err)...)
		return
	}
	h.logger.Debug("store "+op, kv...)
}
