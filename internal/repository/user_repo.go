package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// RankRow 排行榜查询结果：实体 id 及其反应数
type RankRow struct {
	ID    uint64
	Total int64
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByVerificationUUID(ctx context.Context, uuid string) (*model.User, error)
	UpdateUserFields(ctx context.Context, id uint64, fields map[string]any) error
	ListUsers(ctx context.Context, isActive *bool, limit, offset int) ([]*model.User, int64, error)
	TopAuthors(ctx context.Context) ([]RankRow, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *UserRepoImpl) GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error) {
	users := make([]*model.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	result := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.first(ctx, "username = ?", username)
}

// GetUserByEmail 邮箱不唯一，取最近注册的账号
func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).Where("email = ?", email).Order("id desc").First(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return user, nil
}

func (s *UserRepoImpl) GetUserByVerificationUUID(ctx context.Context, uuid string) (*model.User, error) {
	return s.first(ctx, "verification_uuid = ?", uuid)
}

// UpdateUserFields 按字段更新，updated_at 由 gorm 维护
func (s *UserRepoImpl) UpdateUserFields(ctx context.Context, id uint64, fields map[string]any) error {
	return s.db.WithContext(ctx).Model(&model.User{ID: id}).Updates(fields).Error
}

func (s *UserRepoImpl) ListUsers(ctx context.Context, isActive *bool, limit, offset int) ([]*model.User, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.User{})
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*model.User
	err := query.Order("created_at desc, id desc").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// TopAuthors 活跃用户按评分数降序，同分按注册先后
func (s *UserRepoImpl) TopAuthors(ctx context.Context) ([]RankRow, error) {
	var rows []RankRow
	err := s.db.WithContext(ctx).Table("users").
		Select("users.id AS id, COUNT(reactions.user_id) AS total").
		Joins("LEFT JOIN reactions ON reactions.target_kind = ? AND reactions.target_id = users.id", model.KindUser).
		Where("users.is_active = ?", true).
		Group("users.id, users.created_at").
		Order("total DESC, users.created_at ASC, users.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (s *UserRepoImpl) first(ctx context.Context, query string, args ...any) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).Where(query, args...).First(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return user, nil
}
