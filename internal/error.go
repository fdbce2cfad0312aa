package internal

import (
	"os"
	"time"

	sentry "github.com/getsentry/sentry-go"
)

var sentryEnabled = false

// InitErrorHandler enables sentry reporting when SENTRY_DSN is set.
func InitErrorHandler() {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return
	}

	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
		Logger.WithError(err).Fatal("sentry.Init")
	}
	sentryEnabled = true
}

// HandleError logs an unexpected error and sends it to sentry if configured.
// It is called only at the outermost boundary; stages below return errors to
// their caller without local recovery.
func HandleError(err error) {
	r := Logger.WithError(err)

	if sentryEnabled {
		if eventID := sentry.CaptureException(err); eventID != nil {
			r = r.WithField("sentry_event_id", *eventID)
		}
	}

	r.Error("Error")
}

// FlushError flushes pending sentry events
func FlushError() {
	if sentryEnabled {
		sentry.Flush(2 * time.Second)
	}
}
