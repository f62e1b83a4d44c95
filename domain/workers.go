package domain

import "context"

// NotifyWorker dispatches like notifications off the request path.
type NotifyWorker interface {
	LikeNotifier

	// Start drains queued events until ctx is cancelled, then flushes what is left.
	Start(ctx context.Context)
}
