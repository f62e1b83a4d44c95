package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/feed-engagement/domain"
)

// cachedUserRepository 协调层: 读走缓存, 写后失效
type cachedUserRepository struct {
	db    domain.UserRepository
	cache domain.EntityCache
}

var _ domain.UserRepository = (*cachedUserRepository)(nil)

func NewCachedUserRepository(db domain.UserRepository, cache domain.EntityCache) *cachedUserRepository {
	return &cachedUserRepository{
		db:    db,
		cache: cache,
	}
}

func (r *cachedUserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user domain.User
	err := r.cache.GetOrPopulate(ctx, domain.CacheUser, id, &user, func(ctx context.Context) (any, error) {
		return r.db.GetByID(ctx, id)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetByIDs resolves each user through the cache, preserving input order and
// skipping ids that do not exist.
func (r *cachedUserRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	res := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		u, err := r.GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, nil
}

func (r *cachedUserRepository) Update(ctx context.Context, u *domain.User) error {
	if err := r.db.Update(ctx, u); err != nil {
		return err
	}
	r.invalidate(ctx, u.ID)
	return nil
}

func (r *cachedUserRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Invalidate(ctx, domain.CacheUser, id); err != nil {
		logrus.WithFields(logrus.Fields{"user_id": id}).Errorf("failed to invalidate user cache: %v", err)
	}
}
