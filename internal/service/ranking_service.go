package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/repository"
	"context"
)

type RankingService interface {
	Similar(ctx context.Context, postID uint64) ([]dto.PostDTO, error)
	TopPosts(ctx context.Context) ([]dto.PostRankDTO, error)
	TopAuthors(ctx context.Context) ([]dto.AuthorRankDTO, error)
}

type RankingServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
}

func NewRankingService(postRepo repository.PostRepo, userRepo repository.UserRepo) RankingService {
	return &RankingServiceImpl{postRepo: postRepo, userRepo: userRepo}
}

// Similar 与给定文章共享标签最多的已发布文章，最多 5 篇
func (s *RankingServiceImpl) Similar(ctx context.Context, postID uint64) ([]dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	tagIDs := make([]uint64, 0, len(post.Tags))
	for _, tag := range post.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}
	ids, err := s.postRepo.SimilarPostIDs(ctx, post.ID, tagIDs, consts.SimilarPostsLimit)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetPostsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts), nil
}

// TopPosts 所有已发布文章按点赞数排序
func (s *RankingServiceImpl) TopPosts(ctx context.Context) ([]dto.PostRankDTO, error) {
	rows, err := s.postRepo.TopPosts(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetPostsByIDs(ctx, rankIDs(rows))
	if err != nil {
		return nil, err
	}
	totals := rankTotals(rows)

	out := make([]dto.PostRankDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.PostRankDTO{PostDTO: toPostDTO(p, nil), Likes: totals[p.ID]})
	}
	return out, nil
}

// TopAuthors 所有活跃用户按评分数排序
func (s *RankingServiceImpl) TopAuthors(ctx context.Context) ([]dto.AuthorRankDTO, error) {
	rows, err := s.userRepo.TopAuthors(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetUserByIds(ctx, rankIDs(rows))
	if err != nil {
		return nil, err
	}
	totals := rankTotals(rows)
	byID := make(map[uint64]dto.UserDTO, len(users))
	for _, u := range users {
		byID[u.ID] = *toPublicUserDTO(u)
	}

	out := make([]dto.AuthorRankDTO, 0, len(rows))
	for _, row := range rows {
		u, ok := byID[row.ID]
		if !ok {
			continue
		}
		out = append(out, dto.AuthorRankDTO{UserDTO: u, Rating: totals[row.ID]})
	}
	return out, nil
}

func rankIDs(rows []repository.RankRow) []uint64 {
	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids
}

func rankTotals(rows []repository.RankRow) map[uint64]int64 {
	totals := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		totals[row.ID] = row.Total
	}
	return totals
}
