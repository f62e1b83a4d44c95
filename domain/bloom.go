package domain

import "context"

// BloomRepository answers "might this entity exist" without touching the database.
type BloomRepository interface {
	// Add 将 target 加入过滤器
	Add(ctx context.Context, target EntityReference) error

	// Exists 检查 target 是否可能存在
	// 返回 true: 可能存在 (需要进一步查 Cache/DB)
	// 返回 false: 绝对不存在 (直接返回 404)
	Exists(ctx context.Context, target EntityReference) (bool, error)

	// BulkAdd 用于大量添加
	BulkAdd(ctx context.Context, kind EntityKind, ids []int64) error
}
