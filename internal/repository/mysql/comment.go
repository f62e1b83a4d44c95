package mysql

import (
	"context"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/Guyuepp/feed-engagement/internal/repository"
	"github.com/Guyuepp/feed-engagement/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type commentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Delete(ctx context.Context, id int64, uid int64) error {
	result := c.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).Delete(&model.Comment{})
	if result.Error != nil {
		return wrapErr("delete comment", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrForbidden
	}
	return nil
}

func (c *commentRepository) FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]domain.Comment, error) {
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}
	repository.PageVerify(&limit)

	var comments []model.Comment
	err = c.DB.WithContext(ctx).
		Where("post_id = ? AND created_at > ?", postID, decodedCursor).
		Order("created_at").
		Limit(int(limit)).
		Find(&comments).Error
	if err != nil {
		return nil, wrapErr("fetch comments", err)
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var n int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).Where("post_id = ?", postID).Count(&n).Error
	if err != nil {
		return 0, wrapErr("count comments", err)
	}
	return n, nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		return domain.Comment{}, wrapErr("get comment", err)
	}
	return comment.ToDomain(), nil
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	row := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(row).Error; err != nil {
		return wrapErr("store comment", err)
	}
	comment.ID = row.ID
	comment.CreatedAt = row.CreatedAt
	return nil
}

func (c *commentRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return ids, wrapErr("fetch comment ids", err)
}

var _ domain.CommentRepository = (*commentRepository)(nil)
