package domain

import (
	"context"
	"time"
)

// Comment domain model
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64, userID int64) error
	FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]Comment, string, error)
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	// Delete removes comment id if it belongs to userID; ErrForbidden otherwise.
	Delete(ctx context.Context, id int64, userID int64) error
	GetByID(ctx context.Context, id int64) (Comment, error)
	// FetchByPost 按创建时间升序分页获取评论
	FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]Comment, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}
