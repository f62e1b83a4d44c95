package cache

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entry 缓存中保存的实体, Generation 用于判断是否在加载期间被失效
type Entry struct {
	EntityType string          `json:"entity_type"`
	EntityID   int64           `json:"entity_id"`
	Generation int64           `json:"generation"`
	Payload    json.RawMessage `json:"payload"`
	CachedAt   time.Time       `json:"cached_at"` // 创建时间，用于调试
}

// Key is the stable key of an entity: "cache:<type>:<id>".
func Key(entityType string, id int64) string {
	return fmt.Sprintf("cache:%s:%d", entityType, id)
}

// NewEntry 序列化 value 并创建缓存条目
func NewEntry(entityType string, id int64, gen int64, value any) (*Entry, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return &Entry{
		EntityType: entityType,
		EntityID:   id,
		Generation: gen,
		Payload:    payload,
		CachedAt:   time.Now(),
	}, nil
}

// Decode unmarshals the payload into dst.
func (e *Entry) Decode(dst any) error {
	return json.Unmarshal(e.Payload, dst)
}
