package post

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/feed-engagement/domain"
)

const bloomSeedBatch = 1000

type Service struct {
	postRepo    domain.PostRepository
	commentRepo domain.CommentRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.PostUsecase = (*Service)(nil)

// NewService will create a new post service object
func NewService(p domain.PostRepository, c domain.CommentRepository, b domain.BloomRepository) *Service {
	return &Service{
		postRepo:    p,
		commentRepo: c,
		bloomRepo:   b,
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *Service) Store(ctx context.Context, p *domain.Post) error {
	if p.UserID <= 0 || p.Content == "" {
		return domain.ErrBadParamInput
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	if err := s.postRepo.Store(ctx, p); err != nil {
		return err
	}
	if err := s.bloomRepo.Add(ctx, domain.PostRef(p.ID)); err != nil {
		logrus.Errorf("failed to add post %d to bloom filter: %v", p.ID, err)
	}
	return nil
}

// Delete removes a post owned by userID. Its likes stay behind as orphans;
// the bloom filter cannot forget the id, so later likes fall through to the owner lookup.
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	existing, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrForbidden
	}
	return s.postRepo.Delete(ctx, id)
}

// InitBloomFilter seeds the bloom filter with every post and comment id.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	seeds := []struct {
		kind  domain.EntityKind
		fetch func(ctx context.Context, cursor, limit int64) ([]int64, error)
	}{
		{domain.KindPost, s.postRepo.FetchIDs},
		{domain.KindComment, s.commentRepo.FetchIDs},
	}
	for _, seed := range seeds {
		var cursor, total int64
		for {
			ids, err := seed.fetch(ctx, cursor, bloomSeedBatch)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				break
			}
			if err := s.bloomRepo.BulkAdd(ctx, seed.kind, ids); err != nil {
				return err
			}
			total += int64(len(ids))
			cursor = ids[len(ids)-1]
		}
		logrus.Infof("bloom filter seeded with %d %s ids", total, seed.kind)
	}
	return nil
}
