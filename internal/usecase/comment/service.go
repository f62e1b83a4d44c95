package comment

import (
	"context"
	"errors"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/Guyuepp/feed-engagement/internal/repository"
	"github.com/sirupsen/logrus"
)

type service struct {
	commentRepo domain.CommentRepository
	postRepo    domain.PostRepository
	bloomRepo   domain.BloomRepository
}

// mustExist 过滤器说 "不存在" 时回源确认, 过滤器的位可能已经丢失
func (s *service) mustExist(ctx context.Context, postID int64) error {
	target := domain.PostRef(postID)
	exists, err := s.bloomRepo.Exists(ctx, target)
	if err != nil || exists {
		return nil
	}

	_, err = s.postRepo.GetByID(ctx, postID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		logrus.Warnf("could not confirm post %d after a bloom miss: %v", postID, err)
		return nil
	}
	logrus.Warnf("bloom filter missed existing post %d, re-adding", postID)
	if err := s.bloomRepo.Add(ctx, target); err != nil {
		logrus.Errorf("failed to re-add post %d to bloom filter: %v", postID, err)
	}
	return nil
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	if c.PostID <= 0 || c.Content == "" {
		return domain.ErrBadParamInput
	}
	// 写入前以数据库为准
	if _, err := s.postRepo.GetByID(ctx, c.PostID); err != nil {
		return err
	}
	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}
	if err := s.bloomRepo.Add(ctx, domain.CommentRef(c.ID)); err != nil {
		logrus.Errorf("failed to add comment %d to bloom filter: %v", c.ID, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int64, uid int64) error {
	return s.commentRepo.Delete(ctx, id, uid)
}

func (s *service) FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]domain.Comment, string, error) {
	if err := s.mustExist(ctx, postID); err != nil {
		return nil, "", err
	}
	res, err := s.commentRepo.FetchByPost(ctx, postID, cursor, limit)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []domain.Comment{}, "", nil
	}

	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt), nil
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, postRepo domain.PostRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		bloomRepo:   bloomRepo,
	}
}
