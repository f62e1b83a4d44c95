package workers

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/feed-engagement/domain"
)

const DefaultNotifyQueueSize = 1024

type notifyWorker struct {
	notifier domain.LikeNotifier
	ch       chan domain.NotificationEvent
}

var _ domain.NotifyWorker = (*notifyWorker)(nil)

// NewNotifyWorker queues events for notifier, usually a notification.Trigger.
func NewNotifyWorker(notifier domain.LikeNotifier, size int) *notifyWorker {
	if size <= 0 {
		size = DefaultNotifyQueueSize
	}
	return &notifyWorker{
		notifier: notifier,
		ch:       make(chan domain.NotificationEvent, size),
	}
}

// NotifyNewLike never blocks the like request. A full queue drops the event.
func (w *notifyWorker) NotifyNewLike(_ context.Context, event domain.NotificationEvent) {
	select {
	case w.ch <- event:
	default:
		logrus.WithFields(logrus.Fields{
			"actor_user_id": event.ActorUserID,
			"target":        event.Target.String(),
		}).Warn("NotifyWorker's channel is full, notification dropped")
	}
}

func (w *notifyWorker) Start(ctx context.Context) {
	for {
		select {
		case event := <-w.ch:
			w.notifier.NotifyNewLike(ctx, event)
		case <-ctx.Done():
			logrus.Info("shutting down NotifyWorker, flushing remaining notifications...")
			w.flush()
			return
		}
	}
}

// flush delivers whatever is still queued with a fresh context; the request
// contexts these events came from are long gone.
func (w *notifyWorker) flush() {
	ctx := context.Background()
	for {
		select {
		case event := <-w.ch:
			w.notifier.NotifyNewLike(ctx, event)
		default:
			return
		}
	}
}
