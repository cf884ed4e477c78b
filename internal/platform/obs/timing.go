package obs

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a context carrying the request id used in log lines.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, reqID)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// Fields returns the log fields attached to ctx.
func Fields(ctx context.Context) logrus.Fields {
	return logrus.Fields{"req_id": RequestID(ctx)}
}

// Time logs the duration of an operation when the returned func is called.
// Typical use: defer obs.Time(ctx, "op")(&err).
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		entry := logrus.WithFields(Fields(ctx)).WithFields(logrus.Fields{
			"op":  name,
			"dur": time.Since(start).Milliseconds(),
		})

		if errp != nil && *errp != nil {
			entry.WithError(*errp).Info("op failed")
			return
		}
		entry.Debug("op done")
	}
}
