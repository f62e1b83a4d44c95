package like

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/feed-engagement/domain"
)

type Service struct {
	likeRepo domain.LikeRepository
	owners   domain.OwnerResolver
	notifier domain.LikeNotifier
	bloom    domain.BloomRepository
}

var _ domain.LikeUsecase = (*Service)(nil)

// NewService will create a new like service object. bloom may be nil, in which
// case target existence is not pre-checked.
func NewService(l domain.LikeRepository, o domain.OwnerResolver, n domain.LikeNotifier, b domain.BloomRepository) *Service {
	return &Service{
		likeRepo: l,
		owners:   o,
		notifier: n,
		bloom:    b,
	}
}

// mustExist 布隆过滤器只做尽力而为的检查, 查询失败时放行.
// 过滤器的位可能丢失 (Redis 重启或淘汰), "不存在" 需要回源确认.
func (s *Service) mustExist(ctx context.Context, target domain.EntityReference) error {
	if s.bloom == nil {
		return nil
	}
	exists, err := s.bloom.Exists(ctx, target)
	if err != nil {
		logrus.Warnf("bloom filter check failed for %s: %v", target, err)
		return nil
	}
	if exists {
		return nil
	}

	_, err = s.owners.OwnerOf(ctx, target)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		logrus.Warnf("could not confirm %s after a bloom miss: %v", target, err)
		return nil
	}
	logrus.Warnf("bloom filter missed existing %s, re-adding", target)
	if err := s.bloom.Add(ctx, target); err != nil {
		logrus.Errorf("failed to re-add %s to bloom filter: %v", target, err)
	}
	return nil
}

// Like records that userID likes target. Repeated calls return the existing
// like and notify nobody; only the call that created the row fires a notification.
func (s *Service) Like(ctx context.Context, userID int64, target domain.EntityReference) (domain.Like, error) {
	if err := target.Validate(); err != nil {
		return domain.Like{}, err
	}
	if err := s.mustExist(ctx, target); err != nil {
		return domain.Like{}, err
	}

	like, created, err := s.likeRepo.InsertIfAbsent(ctx, userID, target)
	if err != nil {
		return domain.Like{}, err
	}
	if created {
		s.notify(ctx, like)
	}
	return like, nil
}

// notify runs after the like is committed; nothing here can fail the like.
func (s *Service) notify(ctx context.Context, like domain.Like) {
	ownerID, err := s.owners.OwnerOf(ctx, like.Target)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"actor_user_id": like.UserID,
			"target":        like.Target.String(),
		}).Errorf("failed to resolve owner, notification skipped: %v", err)
		return
	}
	s.notifier.NotifyNewLike(ctx, domain.NewLikeNotification(like, ownerID))
}

func (s *Service) Cancel(ctx context.Context, userID int64, target domain.EntityReference) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}
	return s.likeRepo.Delete(ctx, userID, target)
}

func (s *Service) HasLiked(ctx context.Context, userID int64, target domain.EntityReference) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}
	if userID <= 0 {
		return false, nil
	}
	return s.likeRepo.Exists(ctx, userID, target)
}

func (s *Service) Count(ctx context.Context, target domain.EntityReference) (int64, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	return s.likeRepo.CountFor(ctx, target)
}

func (s *Service) List(ctx context.Context, target domain.EntityReference, limit int) ([]domain.Like, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	return s.likeRepo.ListFor(ctx, target, limit)
}
