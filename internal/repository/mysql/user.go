package mysql

import (
	"context"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/Guyuepp/feed-engagement/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository.
// Reads should go through the cached wrapper in internal/repository.
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return domain.User{}, wrapErr("get user", err)
	}

	return user.ToDomain(), nil
}

func (m *userRepository) Update(ctx context.Context, a *domain.User) error {
	userModel := model.NewUserFromDomain(a)

	result := m.DB.WithContext(ctx).Model(userModel).Updates(userModel)
	if result.Error != nil {
		return wrapErr("update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	a.UpdatedAt = userModel.UpdatedAt
	return nil
}

func (m *userRepository) GetByIDs(ctx context.Context, uids []int64) ([]domain.User, error) {
	if len(uids) == 0 {
		return nil, nil
	}
	var users []model.User
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("id in ?", uids).Find(&users).Error
	if err != nil {
		return nil, wrapErr("get users", err)
	}
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, nil
}
