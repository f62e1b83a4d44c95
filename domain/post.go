package domain

import (
	"context"
	"time"
)

// Post is a feed entry. Its author is resolved through the user cache when rendered.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostRepository defines the contract for post persistence
type PostRepository interface {
	// GetByID retrieves a single post by its ID.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// Store creates a new post and backfills its ID.
	Store(ctx context.Context, p *Post) error

	// Delete removes a post by its ID.
	// Returns ErrNotFound if not exists
	Delete(ctx context.Context, id int64) error

	// FetchIDs pages through post ids in ascending order, used to seed the bloom filter.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

type PostUsecase interface {
	GetByID(ctx context.Context, id int64) (Post, error)
	Store(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id int64, userID int64) error
	InitBloomFilter(ctx context.Context) error
}
