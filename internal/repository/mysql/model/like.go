package model

import (
	"time"

	"github.com/Guyuepp/feed-engagement/domain"
)

// Like 点赞记录, (user_id, target_kind, target_id) 唯一
type Like struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     int64     `gorm:"column:user_id;not null;uniqueIndex:ux_like_user_target,priority:1"`
	TargetKind string    `gorm:"column:target_kind;type:varchar(16);not null;uniqueIndex:ux_like_user_target,priority:2;index:ix_like_target,priority:1"`
	TargetID   int64     `gorm:"column:target_id;not null;uniqueIndex:ux_like_user_target,priority:3;index:ix_like_target,priority:2"`
	CreatedAt  time.Time `gorm:"type:datetime(6);not null;index:ix_like_target,priority:3"`
}

func (Like) TableName() string {
	return "likes"
}

func (m *Like) ToDomain() domain.Like {
	return domain.Like{
		ID:     m.ID,
		UserID: m.UserID,
		Target: domain.EntityReference{
			Kind: domain.EntityKind(m.TargetKind),
			ID:   m.TargetID,
		},
		CreatedAt: m.CreatedAt,
	}
}
