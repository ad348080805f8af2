package logger

import "context"

// Leveled adapts the global logger to the Error/Info/Debug/Warn(msg, kv...)
// interface expected by HTTP clients such as retryablehttp.
type Leveled struct {
	ctx context.Context
}

// NewLeveled returns a Leveled logger bound to ctx.
func NewLeveled(ctx context.Context) Leveled {
	return Leveled{ctx: ctx}
}

func (l Leveled) Error(msg string, keysAndValues ...any) { Error(l.ctx, msg, keysAndValues...) }
func (l Leveled) Info(msg string, keysAndValues ...any)  { Info(l.ctx, msg, keysAndValues...) }
func (l Leveled) Debug(msg string, keysAndValues ...any) { Debug(l.ctx, msg, keysAndValues...) }
func (l Leveled) Warn(msg string, keysAndValues ...any)  { Warn(l.ctx, msg, keysAndValues...) }
