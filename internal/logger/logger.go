// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger configures logrus for the CLI and provides per-call helpers.
// Log output goes to stderr so it never interleaves with search results.
package logger

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

// SessionIDKey is the context key carrying the interactive session ID.
const SessionIDKey ctxKey = "sessionId"

// slowCall is the duration above which Track logs a warning.
const slowCall = 3 * time.Second

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	logrus.SetLevel(logrus.WarnLevel)
}

// Setup points the standard logger at w with the named level.
func Setup(w io.Writer, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetOutput(w)
	logrus.SetLevel(lvl)
	return nil
}

// For returns an entry tagged with the session ID from ctx, if any.
func For(ctx context.Context) *logrus.Entry {
	id, ok := ctx.Value(SessionIDKey).(string)
	if !ok {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logrus.WithField("session_id", id)
}

// ContextWithID attaches a session ID to ctx.
func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionIDKey, id)
}

// Track logs msg with its elapsed duration when the returned func is called.
//
//	defer logger.Track(ctx, "catalog search")()
func Track(ctx context.Context, msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := For(ctx).WithField("duration", dur.String())
		if dur > slowCall {
			entry.Warnf("%s completed (slow)", msg)
		} else {
			entry.Debugf("%s completed", msg)
		}
	}
}
