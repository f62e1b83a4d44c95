package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/Guyuepp/feed-engagement/internal/repository/mysql/model"
)

const insertAttempts = 3

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

// NewLikeRepository 创建点赞存储, 唯一性由 ux_like_user_target 保证
func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{db}
}

func (m *likeRepository) whereTarget(ctx context.Context, target domain.EntityReference) *gorm.DB {
	return m.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("target_kind = ? AND target_id = ?", string(target.Kind), target.ID)
}

func (m *likeRepository) Exists(ctx context.Context, uid int64, target domain.EntityReference) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}
	var n int64
	err := m.whereTarget(ctx, target).
		Where("user_id = ?", uid).
		Count(&n).Error
	if err != nil {
		return false, wrapErr("check like", err)
	}
	return n > 0, nil
}

// InsertIfAbsent relies on the unique index: the insert is a no-op for an
// existing row, and the loser of a race reads the winner's row back.
func (m *likeRepository) InsertIfAbsent(ctx context.Context, uid int64, target domain.EntityReference) (domain.Like, bool, error) {
	if err := target.Validate(); err != nil {
		return domain.Like{}, false, err
	}

	var err error
	for range insertAttempts {
		row := model.Like{
			UserID:     uid,
			TargetKind: string(target.Kind),
			TargetID:   target.ID,
			CreatedAt:  time.Now(),
		}
		result := m.DB.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&row)
		if result.Error != nil && !isDuplicate(result.Error) {
			return domain.Like{}, false, wrapErr("insert like", result.Error)
		}
		if result.Error == nil && result.RowsAffected > 0 {
			return row.ToDomain(), true, nil
		}

		var existing model.Like
		err = m.whereTarget(ctx, target).
			Where("user_id = ?", uid).
			Take(&existing).Error
		if err == nil {
			return existing.ToDomain(), false, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Like{}, false, wrapErr("read existing like", err)
		}
		// a concurrent cancel removed the row between our insert and read
	}
	return domain.Like{}, false, fmt.Errorf("%w: insert like: row vanished %d times", domain.ErrStorageUnavailable, insertAttempts)
}

func (m *likeRepository) Delete(ctx context.Context, uid int64, target domain.EntityReference) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}
	result := m.DB.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", uid, string(target.Kind), target.ID).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, wrapErr("delete like", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (m *likeRepository) CountFor(ctx context.Context, target domain.EntityReference) (int64, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	var n int64
	if err := m.whereTarget(ctx, target).Count(&n).Error; err != nil {
		return 0, wrapErr("count likes", err)
	}
	return n, nil
}

func (m *likeRepository) ListFor(ctx context.Context, target domain.EntityReference, limit int) ([]domain.Like, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	q := m.whereTarget(ctx, target).Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []model.Like
	if err := q.Find(&rows).Error; err != nil {
		return nil, wrapErr("list likes", err)
	}
	res := make([]domain.Like, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}
