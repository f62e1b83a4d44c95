package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/Guyuepp/feed-engagement/internal/repository/cache"
)

// DefaultLoadTimeout bounds a shared load, which outlives the request that started it.
const DefaultLoadTimeout = 5 * time.Second

// entityCache 读穿透缓存: 命中直接返回, 未命中调用 loader 并回填
type entityCache struct {
	store       domain.CacheStore
	group       singleflight.Group
	loadTimeout time.Duration
}

var _ domain.EntityCache = (*entityCache)(nil)

// NewEntityCache wraps a CacheStore into the read-through EntityCache.
func NewEntityCache(store domain.CacheStore) *entityCache {
	return &entityCache{store: store, loadTimeout: DefaultLoadTimeout}
}

func (c *entityCache) GetOrPopulate(ctx context.Context, entityType string, id int64, dst any, loader domain.Loader) error {
	key := cache.Key(entityType, id)

	entry, err := c.get(ctx, key)
	if err == nil {
		if err = entry.Decode(dst); err == nil {
			return nil
		}
		logrus.Warnf("dropping undecodable cache entry %s: %v", key, err)
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("cache read failed for %s, loading from source: %v", key, err)
	}

	// 使用singleflight避免缓存击穿. 共享的加载不随任一调用方取消, 每个调用方只等待自己的 ctx
	ch := c.group.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()
		return c.populate(loadCtx, entityType, id, loader)
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		return json.Unmarshal(res.Val.([]byte), dst)
	}
}

// populate loads the value and writes it back unless the key was invalidated
// while the loader ran. It returns the serialized value.
func (c *entityCache) populate(ctx context.Context, entityType string, id int64, loader domain.Loader) ([]byte, error) {
	key := cache.Key(entityType, id)

	gen, genErr := c.store.Generation(ctx, key)
	if genErr != nil {
		logrus.Warnf("cache generation read failed for %s: %v", key, genErr)
	}

	value, err := loader(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := cache.NewEntry(entityType, id, gen, value)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}
	if genErr != nil {
		// backend unreachable: serve the loaded value uncached
		return entry.Payload, nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}
	stored, err := c.store.SetIfGeneration(ctx, key, gen, data)
	if err != nil {
		logrus.Warnf("cache write failed for %s: %v", key, err)
	} else if !stored {
		logrus.Debugf("cache entry %s invalidated during load, not stored", key)
	}
	return entry.Payload, nil
}

func (c *entityCache) get(ctx context.Context, key string) (*cache.Entry, error) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var entry cache.Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *entityCache) Invalidate(ctx context.Context, entityType string, id int64) error {
	key := cache.Key(entityType, id)
	// 正在进行的加载不再共享给后续调用
	c.group.Forget(key)
	return c.store.Invalidate(ctx, key)
}
