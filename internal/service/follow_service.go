package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	"strconv"
)

type FollowService interface {
	ToggleFollow(ctx context.Context, followerID, authorID uint64) (ToggleResult, error)
	IsFollowing(ctx context.Context, followerID, authorID uint64) (bool, error)
	GetFollowers(ctx context.Context, authorID uint64, page string, size int) (*dto.PageDTO[dto.FollowDTO], error)
	GetFollowings(ctx context.Context, followerID uint64, page string, size int) (*dto.PageDTO[dto.FollowDTO], error)
	GetFollowerCount(ctx context.Context, authorID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, followerID uint64) (int64, error)
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo) FollowService {
	return &FollowServiceImpl{followRepo: followRepo, userRepo: userRepo}
}

type fetchFollowsFunc func(ctx context.Context, userID uint64, limit, offset int) ([]*model.Follow, error)
type fetchCountFunc func(ctx context.Context, userID uint64) (int64, error)

// ToggleFollow 关注或取关，不允许关注自己
func (s *FollowServiceImpl) ToggleFollow(ctx context.Context, followerID, authorID uint64) (ToggleResult, error) {
	if followerID == 0 {
		return Removed, ErrUnauthorized
	}
	if followerID == authorID {
		return Removed, ErrFollowSelf
	}
	author, err := s.userRepo.GetUserById(ctx, authorID)
	if err != nil {
		return Removed, err
	}
	if author == nil {
		return Removed, ErrUserNotFound
	}

	created, err := s.followRepo.Toggle(ctx, followerID, authorID)
	result, err := finishToggle(followKind, created, err)
	if err != nil {
		return result, err
	}

	invalidate(ctx, followerCountKey(authorID))
	return result, nil
}

func (s *FollowServiceImpl) IsFollowing(ctx context.Context, followerID, authorID uint64) (bool, error) {
	if followerID == 0 {
		return false, nil
	}
	return s.followRepo.IsFollowing(ctx, followerID, authorID)
}

func (s *FollowServiceImpl) GetFollowers(ctx context.Context, authorID uint64, page string, size int) (*dto.PageDTO[dto.FollowDTO], error) {
	return s.listCommon(ctx, authorID, page, size, true, s.followRepo.GetFollowers, s.GetFollowerCount)
}

func (s *FollowServiceImpl) GetFollowings(ctx context.Context, followerID uint64, page string, size int) (*dto.PageDTO[dto.FollowDTO], error) {
	return s.listCommon(ctx, followerID, page, size, false, s.followRepo.GetFollowings, s.followRepo.GetFollowingCount)
}

func (s *FollowServiceImpl) GetFollowerCount(ctx context.Context, authorID uint64) (int64, error) {
	return cachedCount(ctx, followerCountKey(authorID), consts.ReactionCountTTL, func(ctx context.Context) (int64, error) {
		return s.followRepo.GetFollowerCount(ctx, authorID)
	})
}

func (s *FollowServiceImpl) GetFollowingCount(ctx context.Context, followerID uint64) (int64, error) {
	return s.followRepo.GetFollowingCount(ctx, followerID)
}

func (s *FollowServiceImpl) listCommon(
	ctx context.Context,
	userID uint64,
	page string,
	size int,
	isFollowerList bool,
	fetchList fetchFollowsFunc,
	fetchCount fetchCountFunc,
) (*dto.PageDTO[dto.FollowDTO], error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	total, err := fetchCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := util.Paginate(page, total, size)

	follows, err := fetchList(ctx, userID, p.Size, p.Offset())
	if err != nil {
		return nil, err
	}

	items := make([]dto.FollowDTO, 0, len(follows))
	for _, f := range follows {
		other := f.Author
		if isFollowerList {
			other = f.Follower
		}
		if other == nil {
			continue
		}
		items = append(items, dto.FollowDTO{User: *toPublicUserDTO(other), CreatedAt: f.CreatedAt})
	}
	return newPage(items, p), nil
}

func followerCountKey(authorID uint64) string {
	return consts.FollowerCountKey + strconv.FormatUint(authorID, 10)
}
