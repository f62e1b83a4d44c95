package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/feed-engagement/domain"
)

func TestBloomFilter_Offsets(t *testing.T) {
	t.Run("pinned positions", func(t *testing.T) {
		// 改动哈希方案会让已有位图全部失效, 这里固定具体值
		assert.Equal(t, []int64{658839, 125898, 641533, 108592}, NewBloomFilter(nil, 1<<20, 4).offsets(42))
		assert.Equal(t, []int64{480, 787, 70, 377}, NewBloomFilter(nil, 1024, 4).offsets(7))
		assert.Equal(t, []int64{2806930, 4484165, 6161400, 7838635}, NewBloomFilter(nil, 10000000, 0).offsets(1))
	})

	t.Run("hash count", func(t *testing.T) {
		assert.Len(t, NewBloomFilter(nil, 1024, 0).offsets(7), DefaultBloomHashes)
		assert.Len(t, NewBloomFilter(nil, 1024, 7).offsets(7), 7)
	})

	t.Run("in range and spread", func(t *testing.T) {
		f := NewBloomFilter(nil, 4096, 4)
		for id := int64(-5); id < 500; id++ {
			offs := f.offsets(id)
			seen := map[int64]bool{}
			for _, off := range offs {
				assert.GreaterOrEqual(t, off, int64(0))
				assert.Less(t, off, int64(4096))
				seen[off] = true
			}
			// h2 为奇数, 位图大小为 2 的幂时各位置必然互不相同
			assert.Len(t, seen, len(offs), "id %d", id)
		}
	})
}

func TestBloomFilter_AddExists(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	f := NewBloomFilter(client, 1<<20, 4)

	target := domain.CommentRef(42)
	offsets := []int64{658839, 125898, 641533, 108592}

	for _, off := range offsets {
		mock.ExpectSetBit("bloom:comment:ids", off, 1).SetVal(0)
	}
	require.NoError(t, f.Add(ctx, target))

	for _, off := range offsets {
		mock.ExpectGetBit("bloom:comment:ids", off).SetVal(1)
	}
	ok, err := f.Exists(ctx, target)
	require.NoError(t, err)
	assert.True(t, ok)

	for i, off := range offsets {
		mock.ExpectGetBit("bloom:comment:ids", off).SetVal(int64(i % 2))
	}
	ok, err = f.Exists(ctx, target)
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectGetBit("bloom:comment:ids", offsets[0]).SetErr(errors.New("LOADING"))
	_, err = f.Exists(ctx, target)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloomFilter_KindsAreSeparate(t *testing.T) {
	assert.Equal(t, "bloom:post:ids", bloomKey(domain.KindPost))
	assert.NotEqual(t, bloomKey(domain.KindPost), bloomKey(domain.KindComment))
}

func TestBloomFilter_BulkAdd(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	f := NewBloomFilter(client, 4096, 4)

	require.NoError(t, f.BulkAdd(ctx, domain.KindPost, nil))

	for _, id := range []int64{1, 2} {
		for _, off := range f.offsets(id) {
			mock.ExpectSetBit("bloom:post:ids", off, 1).SetVal(0)
		}
	}
	require.NoError(t, f.BulkAdd(ctx, domain.KindPost, []int64{1, 2}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
