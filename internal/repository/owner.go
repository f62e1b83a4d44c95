package repository

import (
	"context"
	"fmt"

	"github.com/Guyuepp/feed-engagement/domain"
)

type ownerResolver struct {
	posts    domain.PostRepository
	comments domain.CommentRepository
}

var _ domain.OwnerResolver = (*ownerResolver)(nil)

// NewOwnerResolver resolves the author of a like target.
func NewOwnerResolver(posts domain.PostRepository, comments domain.CommentRepository) *ownerResolver {
	return &ownerResolver{
		posts:    posts,
		comments: comments,
	}
}

func (r *ownerResolver) OwnerOf(ctx context.Context, target domain.EntityReference) (int64, error) {
	switch target.Kind {
	case domain.KindPost:
		p, err := r.posts.GetByID(ctx, target.ID)
		if err != nil {
			return 0, err
		}
		return p.UserID, nil
	case domain.KindComment:
		c, err := r.comments.GetByID(ctx, target.ID)
		if err != nil {
			return 0, err
		}
		return c.UserID, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidTarget, string(target.Kind))
	}
}
