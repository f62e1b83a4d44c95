// Package view composes the rendered form of posts and comments.
//
// Counts, the viewer's has_liked flag and the nested lists are separate reads
// issued concurrently. A like or cancel landing between them can make a render
// show a count that is off by the in-flight change; the next render is exact.
package view

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/feed-engagement/domain"
)

const (
	// DefaultCommentLimit bounds comments nested in a post detail view
	DefaultCommentLimit = 50
)

type Assembler struct {
	likes    domain.LikeUsecase
	users    domain.UserRepository
	posts    domain.PostRepository
	comments domain.CommentRepository
}

var _ domain.ViewAssembler = (*Assembler)(nil)

// NewAssembler expects users to be the cached user repository.
func NewAssembler(l domain.LikeUsecase, u domain.UserRepository, p domain.PostRepository, c domain.CommentRepository) *Assembler {
	return &Assembler{
		likes:    l,
		users:    u,
		posts:    p,
		comments: c,
	}
}

func (a *Assembler) Post(ctx context.Context, postID, viewerID int64, detail bool) (domain.PostView, error) {
	post, err := a.posts.GetByID(ctx, postID)
	if err != nil {
		return domain.PostView{}, err
	}
	target := domain.PostRef(post.ID)

	res := domain.PostView{
		ID:        post.ID,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.User, err = a.author(gctx, post.UserID)
		return
	})
	g.Go(func() (err error) {
		res.LikesCount, err = a.likes.Count(gctx, target)
		return
	})
	g.Go(func() (err error) {
		res.CommentsCount, err = a.comments.CountByPost(gctx, post.ID)
		return
	})
	g.Go(func() (err error) {
		res.HasLiked, err = a.likes.HasLiked(gctx, viewerID, target)
		return
	})
	if detail {
		g.Go(func() (err error) {
			res.Likes, err = a.Likes(gctx, target, domain.DefaultLikeListLimit)
			return
		})
		g.Go(func() (err error) {
			res.Comments, err = a.postComments(gctx, post.ID, viewerID)
			return
		})
	}
	if err := g.Wait(); err != nil {
		return domain.PostView{}, err
	}
	return res, nil
}

func (a *Assembler) Comment(ctx context.Context, commentID, viewerID int64, detail bool) (domain.CommentView, error) {
	c, err := a.comments.GetByID(ctx, commentID)
	if err != nil {
		return domain.CommentView{}, err
	}
	return a.comment(ctx, c, viewerID, detail)
}

func (a *Assembler) comment(ctx context.Context, c domain.Comment, viewerID int64, detail bool) (domain.CommentView, error) {
	target := domain.CommentRef(c.ID)
	res := domain.CommentView{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.User, err = a.author(gctx, c.UserID)
		return
	})
	g.Go(func() (err error) {
		res.LikesCount, err = a.likes.Count(gctx, target)
		return
	})
	g.Go(func() (err error) {
		res.HasLiked, err = a.likes.HasLiked(gctx, viewerID, target)
		return
	})
	if detail {
		g.Go(func() (err error) {
			res.Likes, err = a.Likes(gctx, target, domain.DefaultLikeListLimit)
			return
		})
	}
	if err := g.Wait(); err != nil {
		return domain.CommentView{}, err
	}
	return res, nil
}

func (a *Assembler) postComments(ctx context.Context, postID, viewerID int64) ([]domain.CommentView, error) {
	comments, err := a.comments.FetchByPost(ctx, postID, "", DefaultCommentLimit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.CommentView, len(comments))
	for i := range comments {
		if res[i], err = a.comment(ctx, comments[i], viewerID, false); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Likes renders the newest-first liker list of target, each liker read through the user cache.
func (a *Assembler) Likes(ctx context.Context, target domain.EntityReference, limit int) ([]domain.LikeView, error) {
	likes, err := a.likes.List(ctx, target, limit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.LikeView, len(likes))
	for i, l := range likes {
		u, err := a.author(ctx, l.UserID)
		if err != nil {
			return nil, err
		}
		res[i] = domain.LikeView{
			ID:        l.ID,
			User:      u,
			CreatedAt: l.CreatedAt,
		}
	}
	return res, nil
}

// author renders a deleted account as a bare id instead of failing the view.
func (a *Assembler) author(ctx context.Context, userID int64) (domain.User, error) {
	u, err := a.users.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{ID: userID}, nil
	}
	return u, err
}
