// Package except holds invariant checks and shared logging attributes.
package except

import (
	"fmt"
	"log/slog"
)

// Must panics with a formatted message when pred is false. It marks states the
// surrounding code has already proven impossible.
func Must(pred bool, msg string, args ...any) {
	if !pred {
		panic(fmt.Sprintf(msg, args...))
	}
}

// Require panics when err is non-nil.
func Require(err error) {
	Must(err == nil, "unexpected error: %v", err)
}

const (
	logDataKey = "data"
	logErrKey  = "err"
)

// DataAttrs groups attributes under a shared data key.
func DataAttrs(attrs ...slog.Attr) slog.Attr {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = any(attr)
	}
	return slog.Group(logDataKey, args...)
}

// ErrAttr wraps an error into a loggable attribute.
func ErrAttr(err error) slog.Attr {
	if err == nil {
		return slog.Group(logErrKey)
	}
	return slog.String(logErrKey, err.Error())
}
