package model

import (
	"time"

	"github.com/Guyuepp/feed-engagement/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PostID    int64     `gorm:"column:post_id;not null;index:ix_comment_post_created,priority:1"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Content   string    `gorm:"type:varchar(140);not null"`
	CreatedAt time.Time `gorm:"type:datetime(6);index:ix_comment_post_created,priority:2"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
