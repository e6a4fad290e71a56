package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// PostFilter 已发布文章列表的筛选条件
type PostFilter struct {
	AuthorID uint64
	TagID    uint64
	Query    string
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostsByIDs(ctx context.Context, ids []uint64) ([]*model.Post, error)
	UpdatePost(ctx context.Context, id uint64, fields map[string]any, tagIDs *[]uint64) error
	ListPublished(ctx context.Context, filter PostFilter, limit, offset int) ([]*model.Post, int64, error)
	ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Post, int64, error)
	SimilarPostIDs(ctx context.Context, postID uint64, tagIDs []uint64, limit int) ([]uint64, error)
	TopPosts(ctx context.Context) ([]RankRow, error)
	AddImage(ctx context.Context, image *model.PostImage) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

// CreatePost 创建文章并写入标签关联
func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, tagIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Images", "Author").Create(post).Error; err != nil {
			return err
		}
		return replacePostTags(tx, post.ID, tagIDs)
	})
}

// GetPost 按 id 获取文章，隐藏的文章同样返回
func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.withAssociations(s.db.WithContext(ctx)).First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

// GetPostsByIDs 结果顺序与 ids 一致，不存在的 id 被跳过
func (s *PostRepoImpl) GetPostsByIDs(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, len(ids))
	if len(ids) == 0 {
		return posts, nil
	}

	var found []*model.Post
	if err := s.withAssociations(s.db.WithContext(ctx)).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint64]*model.Post, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

// UpdatePost 更新字段，tagIDs 不为 nil 时整体替换标签
func (s *PostRepoImpl) UpdatePost(ctx context.Context, id uint64, fields map[string]any, tagIDs *[]uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&model.Post{ID: id}).Updates(fields).Error; err != nil {
				return err
			}
		}
		if tagIDs == nil {
			return nil
		}
		if len(fields) == 0 {
			// 仅修改标签也算一次修改
			if err := tx.Model(&model.Post{ID: id}).Update("updated_at", tx.NowFunc()).Error; err != nil {
				return err
			}
		}
		return replacePostTags(tx, id, *tagIDs)
	})
}

func (s *PostRepoImpl) ListPublished(ctx context.Context, filter PostFilter, limit, offset int) ([]*model.Post, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Post{}).Where("posts.status = ?", model.StatusPublished)
	if filter.AuthorID != 0 {
		query = query.Where("posts.author_id = ?", filter.AuthorID)
	}
	if filter.TagID != 0 {
		query = query.Where("posts.id IN (?)",
			s.db.Model(&model.PostTag{}).Select("post_id").Where("tag_id = ?", filter.TagID))
	}
	if filter.Query != "" {
		like := "%" + escapeLike(filter.Query) + "%"
		query = query.Joins("JOIN users ON users.id = posts.author_id").
			Where("posts.title LIKE ? ESCAPE '!' OR posts.text LIKE ? ESCAPE '!' OR users.username LIKE ? ESCAPE '!'", like, like, like)
	}
	return s.page(query, limit, offset)
}

// ListByAuthor 作者本人的文章，包含隐藏的
func (s *PostRepoImpl) ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Post, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Post{}).Where("posts.author_id = ?", authorID)
	return s.page(query, limit, offset)
}

// SimilarPostIDs 共同标签数降序，其次创建时间降序，排除自身
func (s *PostRepoImpl) SimilarPostIDs(ctx context.Context, postID uint64, tagIDs []uint64, limit int) ([]uint64, error) {
	if len(tagIDs) == 0 {
		return []uint64{}, nil
	}

	var rows []RankRow
	err := s.db.WithContext(ctx).Table("posts").
		Select("posts.id AS id, COUNT(post_tags.tag_id) AS total").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id IN ?", tagIDs).
		Where("posts.status = ?", model.StatusPublished).
		Where("posts.id <> ?", postID).
		Group("posts.id, posts.created_at").
		Order("total DESC, posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

// TopPosts 已发布文章按点赞数降序，无点赞的排在最后，同分按创建先后
func (s *PostRepoImpl) TopPosts(ctx context.Context) ([]RankRow, error) {
	var rows []RankRow
	err := s.db.WithContext(ctx).Table("posts").
		Select("posts.id AS id, COUNT(reactions.user_id) AS total").
		Joins("LEFT JOIN reactions ON reactions.target_kind = ? AND reactions.target_id = posts.id", model.KindPost).
		Where("posts.status = ?", model.StatusPublished).
		Group("posts.id, posts.created_at").
		Order("total DESC, posts.created_at ASC, posts.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (s *PostRepoImpl) AddImage(ctx context.Context, image *model.PostImage) error {
	return s.db.WithContext(ctx).Create(image).Error
}

func (s *PostRepoImpl) page(query *gorm.DB, limit, offset int) ([]*model.Post, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*model.Post
	err := s.withAssociations(query).
		Order("posts.created_at desc, posts.id desc").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *PostRepoImpl) withAssociations(db *gorm.DB) *gorm.DB {
	return db.Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("post_images.id") })
}

// likeEscaper 用户输入中的 % 和 _ 按字面匹配。转义符取 '!'，mysql 与 sqlite 写法一致
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func replacePostTags(tx *gorm.DB, postID uint64, tagIDs []uint64) error {
	if err := tx.Where("post_id = ?", postID).Delete(&model.PostTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]model.PostTag, 0, len(tagIDs))
	seen := make(map[uint64]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, model.PostTag{PostID: postID, TagID: id})
	}
	return tx.Create(&rows).Error
}
