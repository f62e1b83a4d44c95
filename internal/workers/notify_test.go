package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/feed-engagement/domain"
)

type recorder struct {
	mu     sync.Mutex
	events []domain.NotificationEvent
}

func (r *recorder) NotifyNewLike(_ context.Context, ev domain.NotificationEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func event(uid int64) domain.NotificationEvent {
	return domain.NewLikeNotification(domain.Like{UserID: uid, Target: domain.CommentRef(5)}, 8)
}

func TestNotifyWorker_DeliversInBackground(t *testing.T) {
	rec := &recorder{}
	w := NewNotifyWorker(rec, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Start(ctx)
	}()

	for uid := range int64(5) {
		w.NotifyNewLike(context.Background(), event(uid+1))
	}
	assert.Eventually(t, func() bool { return rec.len() == 5 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestNotifyWorker_FlushesOnShutdown(t *testing.T) {
	rec := &recorder{}
	w := NewNotifyWorker(rec, 8)
	for uid := range int64(3) {
		w.NotifyNewLike(context.Background(), event(uid+1))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Start(ctx)

	require.Equal(t, 3, rec.len())
	assert.Equal(t, int64(1), rec.events[0].ActorUserID)
}

func TestNotifyWorker_DropsWhenFull(t *testing.T) {
	rec := &recorder{}
	w := NewNotifyWorker(rec, 1)

	w.NotifyNewLike(context.Background(), event(1))
	w.NotifyNewLike(context.Background(), event(2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Start(ctx)

	require.Equal(t, 1, rec.len())
	assert.Equal(t, int64(1), rec.events[0].ActorUserID)
}

func TestNewNotifyWorker_DefaultSize(t *testing.T) {
	w := NewNotifyWorker(&recorder{}, 0)
	assert.Equal(t, DefaultNotifyQueueSize, cap(w.ch))
}
