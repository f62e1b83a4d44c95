package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/feed-engagement/domain"
)

const (
	// KeyGenerationSuffix 失效代数, 与实体缓存 key 成对出现
	KeyGenerationSuffix = ":gen"

	// MinGenerationTTL 失效代数的最短保留时间, 必须远长于一次回源加载
	MinGenerationTTL = 24 * time.Hour
)

// setIfGenerationScript writes the entry only if nobody invalidated the key
// since the caller read its generation.
// KEYS = {实体缓存, 失效代数}
// ARGV = {读取到的代数, 序列化数据, 过期秒数(0 表示不过期)}
var setIfGenerationScript = redis.NewScript(`
	local gen = redis.call('GET', KEYS[2])
	if gen == false then
		gen = '0'
	end
	if gen ~= ARGV[1] then
		return 0 -- 加载期间已失效
	end
	if tonumber(ARGV[3]) > 0 then
		redis.call('SET', KEYS[1], ARGV[2], 'EX', ARGV[3])
	else
		redis.call('SET', KEYS[1], ARGV[2])
	end
	return 1
`)

type cacheStore struct {
	client     *redis.Client
	ttlSeconds int64
	genTTL     time.Duration
}

var _ domain.CacheStore = (*cacheStore)(nil)

// NewCacheStore 创建实体缓存存储. ttl 只用于限制内存占用, 新鲜度由失效保证; 0 表示不过期.
// EX 只接受整秒, 不足一秒的部分向上取整.
func NewCacheStore(client *redis.Client, ttl time.Duration) *cacheStore {
	var seconds int64
	if ttl > 0 {
		seconds = int64((ttl + time.Second - 1) / time.Second)
	}
	return &cacheStore{
		client:     client,
		ttlSeconds: seconds,
		genTTL:     max(ttl, MinGenerationTTL),
	}
}

func generationKey(key string) string {
	return key + KeyGenerationSuffix
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrCacheUnavailable, op, err)
}

func (c *cacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	} else if err != nil {
		return nil, unavailable("get", err)
	}
	return data, nil
}

func (c *cacheStore) Generation(ctx context.Context, key string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		return 0, unavailable("get generation", err)
	}
	return gen, nil
}

func (c *cacheStore) SetIfGeneration(ctx context.Context, key string, gen int64, payload []byte) (bool, error) {
	keys := []string{key, generationKey(key)}
	args := []any{gen, payload, c.ttlSeconds}
	res, err := setIfGenerationScript.Run(ctx, c.client, keys, args...).Int()
	if err != nil {
		return false, unavailable("set", err)
	}
	return res == 1, nil
}

// Invalidate bumps the generation and deletes the entry in one transaction.
// The generation key is refreshed on every bump so idle keys eventually go away;
// a key that expires reads as 0 again, which at worst rejects one late write.
func (c *cacheStore) Invalidate(ctx context.Context, key string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(key))
		pipe.Expire(ctx, generationKey(key), c.genTTL)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return unavailable("invalidate", err)
	}
	return nil
}
