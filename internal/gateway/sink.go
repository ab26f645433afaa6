package gateway

import (
	"io"
	"time"

	"github.com/avast/retry-go/v4"
)

// retryWriter wraps a transaction-log sink so that transient write failures
// are retried a few times and then dropped. A payment that already produced
// a reference must never be failed by its log entry.
type retryWriter struct {
	w        io.Writer
	attempts uint
	delay    time.Duration
}

func (rw retryWriter) Write(p []byte) (int, error) {
	_ = retry.Do(
		func() error {
			_, err := rw.w.Write(p)
			return err
		},
		retry.Attempts(rw.attempts),
		retry.Delay(rw.delay),
		retry.LastErrorOnly(true),
	)
	// Entry is dropped after the last attempt; report success either way.
	return len(p), nil
}

func newLogWriter(s settings) io.Writer {
	return retryWriter{w: s.sink, attempts: s.sinkAttempts, delay: s.sinkDelay}
}
