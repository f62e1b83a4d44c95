package post_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/Guyuepp/feed-engagement/domain/mocks"
	"github.com/Guyuepp/feed-engagement/internal/usecase/post"
)

func TestStore(t *testing.T) {
	posts := new(mocks.PostRepository)
	bloom := new(mocks.BloomRepository)
	svc := post.NewService(posts, new(mocks.CommentRepository), bloom)

	p := &domain.Post{UserID: 3, Content: faker.Sentence()}
	posts.On("Store", mock.Anything, p).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Post).ID = 40
	}).Return(nil).Once()
	bloom.On("Add", mock.Anything, domain.PostRef(40)).Return(errors.New("redis down")).Once()

	require.NoError(t, svc.Store(context.Background(), p))
	assert.Equal(t, int64(40), p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	posts.AssertExpectations(t)
	bloom.AssertExpectations(t)

	assert.ErrorIs(t, svc.Store(context.Background(), &domain.Post{UserID: 3}), domain.ErrBadParamInput)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	posts := new(mocks.PostRepository)
	svc := post.NewService(posts, new(mocks.CommentRepository), new(mocks.BloomRepository))
	posts.On("GetByID", mock.Anything, int64(40)).Return(domain.Post{ID: 40, UserID: 3}, nil)
	posts.On("Delete", mock.Anything, int64(40)).Return(nil).Once()

	assert.ErrorIs(t, svc.Delete(ctx, 40, 4), domain.ErrForbidden)
	assert.NoError(t, svc.Delete(ctx, 40, 3))
	posts.AssertExpectations(t)
}

func TestInitBloomFilter(t *testing.T) {
	ctx := context.Background()
	posts := new(mocks.PostRepository)
	comments := new(mocks.CommentRepository)
	bloom := new(mocks.BloomRepository)
	svc := post.NewService(posts, comments, bloom)

	posts.On("FetchIDs", mock.Anything, int64(0), int64(1000)).Return([]int64{1, 2, 3}, nil).Once()
	posts.On("FetchIDs", mock.Anything, int64(3), int64(1000)).Return([]int64{}, nil).Once()
	comments.On("FetchIDs", mock.Anything, int64(0), int64(1000)).Return([]int64{}, nil).Once()
	bloom.On("BulkAdd", mock.Anything, domain.KindPost, []int64{1, 2, 3}).Return(nil).Once()

	require.NoError(t, svc.InitBloomFilter(ctx))
	posts.AssertExpectations(t)
	comments.AssertExpectations(t)
	bloom.AssertExpectations(t)
}
