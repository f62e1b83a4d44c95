package redis

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/redis/go-redis/v9"
)

const (
	// KeyBloom 每种实体一个位图
	KeyBloom = "bloom:%s:ids"

	DefaultBloomHashes = 4
)

type bloomFilter struct {
	client *redis.Client
	bits   uint64
	hashes int
}

var _ domain.BloomRepository = (*bloomFilter)(nil)

// NewBloomFilter 创建基于 SETBIT 的布隆过滤器. hashes <= 0 时使用 DefaultBloomHashes.
func NewBloomFilter(client *redis.Client, bits uint64, hashes int) *bloomFilter {
	if hashes <= 0 {
		hashes = DefaultBloomHashes
	}
	return &bloomFilter{
		client: client,
		bits:   bits,
		hashes: hashes,
	}
}

func bloomKey(kind domain.EntityKind) string {
	return fmt.Sprintf(KeyBloom, kind)
}

// offsets 双重哈希: 对 id 的 8 字节大端编码做一次 FNV-1a,
// 低 32 位作 h1, 高 32 位置奇作 h2, 第 i 个位置为 (h1 + i*h2) mod bits.
func (b *bloomFilter) offsets(id int64) []int64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	h := fnv.New64a()
	h.Write(buf[:])
	sum := h.Sum64()

	h1 := sum & 0xffffffff
	h2 := sum>>32 | 1
	out := make([]int64, b.hashes)
	for i := range out {
		out[i] = int64((h1 + uint64(i)*h2) % b.bits)
	}
	return out
}

func (b *bloomFilter) Add(ctx context.Context, target domain.EntityReference) error {
	return b.setBits(ctx, target.Kind, []int64{target.ID})
}

func (b *bloomFilter) BulkAdd(ctx context.Context, kind domain.EntityKind, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return b.setBits(ctx, kind, ids)
}

func (b *bloomFilter) setBits(ctx context.Context, kind domain.EntityKind, ids []int64) error {
	key := bloomKey(kind)
	pipe := b.client.Pipeline()
	for _, id := range ids {
		for _, off := range b.offsets(id) {
			pipe.SetBit(ctx, key, off, 1)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("bloom add %s: %w", kind, err)
	}
	return nil
}

func (b *bloomFilter) Exists(ctx context.Context, target domain.EntityReference) (bool, error) {
	key := bloomKey(target.Kind)
	pipe := b.client.Pipeline()
	bits := make([]*redis.IntCmd, 0, b.hashes)
	for _, off := range b.offsets(target.ID) {
		bits = append(bits, pipe.GetBit(ctx, key, off))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("bloom exists %s: %w", target, err)
	}

	for _, bit := range bits {
		if bit.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}
