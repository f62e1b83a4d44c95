package domain

import (
	"context"
	"time"
)

// LikeView is one entry of a rendered liker list.
type LikeView struct {
	ID        int64     `json:"id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentView is a comment as shown to a viewer.
type CommentView struct {
	ID         int64      `json:"id"`
	PostID     int64      `json:"post_id"`
	User       User       `json:"user"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
	LikesCount int64      `json:"likes_count"`
	HasLiked   bool       `json:"has_liked"`
	Likes      []LikeView `json:"likes,omitempty"`
}

// PostView is a post as shown to a viewer. Likes and Comments are only filled for detail renders.
type PostView struct {
	ID            int64         `json:"id"`
	User          User          `json:"user"`
	Content       string        `json:"content"`
	CreatedAt     time.Time     `json:"created_at"`
	LikesCount    int64         `json:"likes_count"`
	CommentsCount int64         `json:"comments_count"`
	HasLiked      bool          `json:"has_liked"`
	Likes         []LikeView    `json:"likes,omitempty"`
	Comments      []CommentView `json:"comments,omitempty"`
}

// ViewAssembler renders entities for a viewer. viewerID 0 is an anonymous viewer.
type ViewAssembler interface {
	Post(ctx context.Context, postID, viewerID int64, detail bool) (PostView, error)
	Comment(ctx context.Context, commentID, viewerID int64, detail bool) (CommentView, error)
	Likes(ctx context.Context, target EntityReference, limit int) ([]LikeView, error)
}
