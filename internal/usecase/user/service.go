package user

import (
	"context"
	"strings"
	"time"

	"github.com/Guyuepp/feed-engagement/domain"
)

const maxNameLen = 64

type Service struct {
	userRepo domain.UserRepository
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService expects the cached user repository so that Rename invalidates the cached profile.
func NewService(u domain.UserRepository) *Service {
	return &Service{userRepo: u}
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *Service) Rename(ctx context.Context, id int64, name string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLen {
		return domain.User{}, domain.ErrBadParamInput
	}
	u := domain.User{ID: id, Name: name, UpdatedAt: time.Now()}
	if err := s.userRepo.Update(ctx, &u); err != nil {
		return domain.User{}, err
	}
	return s.userRepo.GetByID(ctx, id)
}
