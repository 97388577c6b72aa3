package logging

import (
	"context"
	"sync/atomic"
)

// MirrorFunc receives a copy of every log entry that passes the logger's
// level check. It runs on the caller's goroutine, so implementations must
// hand work off quickly.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

var mirrorFn atomic.Pointer[MirrorFunc]

// SetMirror registers fn as the process-wide log mirror. Passing nil removes
// the current mirror.
func SetMirror(fn MirrorFunc) {
	if fn == nil {
		mirrorFn.Store(nil)
		return
	}
	mirrorFn.Store(&fn)
}

func mirrorEntry(ctx context.Context, level Level, msg string, args []any) {
	if p := mirrorFn.Load(); p != nil {
		(*p)(ctx, level, msg, args...)
	}
}
