package distribution

import "context"

// Notifier mirrors state transitions to an operator chat. Messages use the
// Markdown subset understood by the channel.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string) error { return nil }
