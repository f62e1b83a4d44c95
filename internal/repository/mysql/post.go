package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/Guyuepp/feed-engagement/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	var post model.Post
	if err := m.DB.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return domain.Post{}, wrapErr("get post", err)
	}
	return post.ToDomain(), nil
}

func (m *postRepository) Store(ctx context.Context, p *domain.Post) error {
	postModel := model.NewPostFromDomain(p)
	if err := m.DB.WithContext(ctx).Create(postModel).Error; err != nil {
		return wrapErr("store post", err)
	}
	p.ID = postModel.ID
	p.CreatedAt = postModel.CreatedAt
	p.UpdatedAt = postModel.UpdatedAt
	return nil
}

func (m *postRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Post{}, id)
	if result.Error != nil {
		return wrapErr("delete post", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return ids, wrapErr("fetch post ids", err)
}
