package like_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/Guyuepp/feed-engagement/domain/mocks"
	"github.com/Guyuepp/feed-engagement/internal/usecase/like"
)

type likeKey struct {
	user   int64
	target domain.EntityReference
}

// memLikes is a race-safe in-memory domain.LikeRepository.
type memLikes struct {
	mu     sync.Mutex
	nextID int64
	rows   map[likeKey]domain.Like
}

func newMemLikes() *memLikes {
	return &memLikes{rows: map[likeKey]domain.Like{}}
}

func (m *memLikes) Exists(_ context.Context, uid int64, t domain.EntityReference) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[likeKey{uid, t}]
	return ok, nil
}

func (m *memLikes) InsertIfAbsent(_ context.Context, uid int64, t domain.EntityReference) (domain.Like, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.rows[likeKey{uid, t}]; ok {
		return l, false, nil
	}
	m.nextID++
	l := domain.Like{ID: m.nextID, UserID: uid, Target: t, CreatedAt: time.Now()}
	m.rows[likeKey{uid, t}] = l
	return l, true, nil
}

func (m *memLikes) Delete(_ context.Context, uid int64, t domain.EntityReference) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[likeKey{uid, t}]
	delete(m.rows, likeKey{uid, t})
	return ok, nil
}

func (m *memLikes) CountFor(_ context.Context, t domain.EntityReference) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k := range m.rows {
		if k.target == t {
			n++
		}
	}
	return n, nil
}

func (m *memLikes) ListFor(_ context.Context, t domain.EntityReference, limit int) ([]domain.Like, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Like
	for k, l := range m.rows {
		if k.target == t {
			res = append(res, l)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID > res[j].ID })
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

// recorder collects delivered notifications.
type recorder struct {
	mu     sync.Mutex
	events []domain.NotificationEvent
}

func (r *recorder) NotifyNewLike(_ context.Context, ev domain.NotificationEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// owners maps targets to their authors.
type owners map[domain.EntityReference]int64

func (o owners) OwnerOf(_ context.Context, t domain.EntityReference) (int64, error) {
	id, ok := o[t]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

var (
	post12    = domain.PostRef(12)
	comment5  = domain.CommentRef(5)
	ownersMap = owners{post12: 7, comment5: 8}
)

func TestLike_NotifiesOnlyOnCreate(t *testing.T) {
	ctx := context.Background()
	store := newMemLikes()
	rec := &recorder{}
	svc := like.NewService(store, ownersMap, rec, nil)

	first, err := svc.Like(ctx, 4, post12)
	require.NoError(t, err)
	second, err := svc.Like(ctx, 4, post12)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	n, err := svc.Count(ctx, post12)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.Equal(t, 1, rec.count())
	ev := rec.events[0]
	assert.Equal(t, domain.NotificationNewLike, ev.Kind)
	assert.Equal(t, int64(4), ev.ActorUserID)
	assert.Equal(t, int64(7), ev.TargetOwnerUserID)
	assert.Equal(t, post12, ev.Target)
}

func TestLike_CancelThenLikeAgain(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	svc := like.NewService(newMemLikes(), ownersMap, rec, nil)

	_, err := svc.Like(ctx, 4, post12)
	require.NoError(t, err)

	deleted, err := svc.Cancel(ctx, 4, post12)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Cancel(ctx, 4, post12)
	require.NoError(t, err)
	assert.False(t, deleted)

	liked, err := svc.HasLiked(ctx, 4, post12)
	require.NoError(t, err)
	assert.False(t, liked)

	_, err = svc.Like(ctx, 4, post12)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.count())
}

func TestLike_CancelWithoutLike(t *testing.T) {
	rec := &recorder{}
	svc := like.NewService(newMemLikes(), ownersMap, rec, nil)

	deleted, err := svc.Cancel(context.Background(), 4, comment5)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Zero(t, rec.count())
}

func TestLike_ConcurrentLikesCreateOneRow(t *testing.T) {
	ctx := context.Background()
	store := newMemLikes()
	rec := &recorder{}
	svc := like.NewService(store, ownersMap, rec, nil)

	const n = 50
	var wg sync.WaitGroup
	ids := make([]int64, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l, err := svc.Like(ctx, 4, comment5)
			assert.NoError(t, err)
			ids[i] = l.ID
		}()
	}
	wg.Wait()

	count, err := svc.Count(ctx, comment5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 1, rec.count())
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestLike_PolymorphicTargetsAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc := like.NewService(newMemLikes(), owners{domain.PostRef(1): 2, domain.CommentRef(1): 3}, &recorder{}, nil)

	_, err := svc.Like(ctx, 4, domain.PostRef(1))
	require.NoError(t, err)

	liked, err := svc.HasLiked(ctx, 4, domain.CommentRef(1))
	require.NoError(t, err)
	assert.False(t, liked)

	n, err := svc.Count(ctx, domain.CommentRef(1))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLike_Scenario(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	svc := like.NewService(newMemLikes(), ownersMap, rec, nil)

	for _, uid := range []int64{1, 2, 3} {
		_, err := svc.Like(ctx, uid, post12)
		require.NoError(t, err)
	}
	_, err := svc.Like(ctx, 2, post12)
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, 1, post12)
	require.NoError(t, err)

	n, err := svc.Count(ctx, post12)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	list, err := svc.List(ctx, post12, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].UserID)
	assert.Equal(t, int64(2), list[1].UserID)

	assert.Equal(t, 3, rec.count())
}

func TestLike_SelfLikeNotifiesOwner(t *testing.T) {
	rec := &recorder{}
	svc := like.NewService(newMemLikes(), ownersMap, rec, nil)

	_, err := svc.Like(context.Background(), 7, post12)
	require.NoError(t, err)
	require.Equal(t, 1, rec.count())
	assert.Equal(t, rec.events[0].ActorUserID, rec.events[0].TargetOwnerUserID)
}

func TestLike_OwnerFailureDoesNotFailLike(t *testing.T) {
	rec := &recorder{}
	svc := like.NewService(newMemLikes(), owners{}, rec, nil)

	l, err := svc.Like(context.Background(), 4, post12)
	require.NoError(t, err)
	assert.NotZero(t, l.ID)
	assert.Zero(t, rec.count())
}

func TestLike_InvalidTarget(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.LikeRepository)
	svc := like.NewService(repo, ownersMap, &recorder{}, nil)
	bad := domain.EntityReference{Kind: "photo", ID: 1}

	_, err := svc.Like(ctx, 4, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)
	_, err = svc.Cancel(ctx, 4, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)
	_, err = svc.Count(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)
	repo.AssertNotCalled(t, "InsertIfAbsent", mock.Anything, mock.Anything, mock.Anything)
}

func TestLike_StorageUnavailable(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.LikeRepository)
	notifier := new(mocks.LikeNotifier)
	failure := fmt.Errorf("%w: insert like: dial tcp: refused", domain.ErrStorageUnavailable)
	repo.On("InsertIfAbsent", mock.Anything, int64(4), post12).Return(domain.Like{}, false, failure).Once()
	svc := like.NewService(repo, ownersMap, notifier, nil)

	_, err := svc.Like(ctx, 4, post12)
	assert.True(t, errors.Is(err, domain.ErrStorageUnavailable))
	notifier.AssertNotCalled(t, "NotifyNewLike", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestLike_BloomFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("absent target is rejected", func(t *testing.T) {
		missing := domain.PostRef(99)
		bloom := new(mocks.BloomRepository)
		bloom.On("Exists", mock.Anything, missing).Return(false, nil).Once()
		store := newMemLikes()
		svc := like.NewService(store, ownersMap, &recorder{}, bloom)

		_, err := svc.Like(ctx, 4, missing)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		n, _ := store.CountFor(ctx, missing)
		assert.Zero(t, n)
		bloom.AssertExpectations(t)
	})

	t.Run("lost filter bits do not reject existing targets", func(t *testing.T) {
		bloom := new(mocks.BloomRepository)
		bloom.On("Exists", mock.Anything, post12).Return(false, nil).Once()
		bloom.On("Add", mock.Anything, post12).Return(nil).Once()
		rec := &recorder{}
		svc := like.NewService(newMemLikes(), ownersMap, rec, bloom)

		l, err := svc.Like(ctx, 4, post12)
		require.NoError(t, err)
		assert.Equal(t, post12, l.Target)
		assert.Equal(t, 1, rec.count())
		bloom.AssertExpectations(t)
	})

	t.Run("filter errors are ignored", func(t *testing.T) {
		bloom := new(mocks.BloomRepository)
		bloom.On("Exists", mock.Anything, post12).Return(false, errors.New("timeout")).Once()
		svc := like.NewService(newMemLikes(), ownersMap, &recorder{}, bloom)

		_, err := svc.Like(ctx, 4, post12)
		assert.NoError(t, err)
	})
}

func TestHasLiked_AnonymousViewer(t *testing.T) {
	repo := new(mocks.LikeRepository)
	svc := like.NewService(repo, ownersMap, &recorder{}, nil)

	liked, err := svc.HasLiked(context.Background(), 0, post12)
	require.NoError(t, err)
	assert.False(t, liked)
	repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}
