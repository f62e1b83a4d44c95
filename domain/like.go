package domain

import (
	"context"
	"time"
)

const (
	// DefaultLikeListLimit bounds the liker list rendered in detail views
	DefaultLikeListLimit = 100
)

// Like is a single user's like on a post or a comment.
// At most one Like exists per (UserID, Target).
type Like struct {
	ID        int64
	UserID    int64
	Target    EntityReference
	CreatedAt time.Time
}

// LikeRepository is the durable like store.
type LikeRepository interface {
	// Exists reports whether userID currently likes target.
	Exists(ctx context.Context, userID int64, target EntityReference) (bool, error)

	// InsertIfAbsent creates the like unless it already exists.
	// created is true for exactly one of any number of concurrent callers.
	InsertIfAbsent(ctx context.Context, userID int64, target EntityReference) (like Like, created bool, err error)

	// Delete removes the like and reports whether a row existed.
	Delete(ctx context.Context, userID int64, target EntityReference) (bool, error)

	CountFor(ctx context.Context, target EntityReference) (int64, error)

	// ListFor returns likes on target newest first. limit <= 0 returns all of them.
	ListFor(ctx context.Context, target EntityReference, limit int) ([]Like, error)
}

type LikeUsecase interface {
	Like(ctx context.Context, userID int64, target EntityReference) (Like, error)
	Cancel(ctx context.Context, userID int64, target EntityReference) (bool, error)
	HasLiked(ctx context.Context, userID int64, target EntityReference) (bool, error)
	Count(ctx context.Context, target EntityReference) (int64, error)
	List(ctx context.Context, target EntityReference, limit int) ([]Like, error)
}
