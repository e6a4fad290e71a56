package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/mail"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, req *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
	IsTokenRevoked(ctx context.Context, token string) (bool, error)
	GetProfile(ctx context.Context, viewerID, userID uint64) (*dto.UserProfileDTO, error)
	GetByUsername(ctx context.Context, username string) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, actorID, userID uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error)
	Deactivate(ctx context.Context, actorID, userID uint64) error
	ListUsers(ctx context.Context, query *dto.UserListQuery, size int) (*dto.PageDTO[dto.UserDTO], error)
	SendRecovery(ctx context.Context, email string) error
	Activate(ctx context.Context, verificationUUID string) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo    repository.UserRepo
	followSvc   FollowService
	reactionSvc ReactionService
	policy      SoftDeletePolicy
	sender      mail.Sender
	baseURL     string
	now         func() time.Time
}

func NewUserService(
	userRepo repository.UserRepo,
	followSvc FollowService,
	reactionSvc ReactionService,
	policy SoftDeletePolicy,
	sender mail.Sender,
	baseURL string,
) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		followSvc:   followSvc,
		reactionSvc: reactionSvc,
		policy:      policy,
		sender:      sender,
		baseURL:     baseURL,
		now:         time.Now,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error) {
	username := strings.TrimSpace(req.Username)
	exist, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrUsernameExist
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:         username,
		Email:            strings.TrimSpace(req.Email),
		FirstName:        orDefaultName(req.FirstName),
		LastName:         orDefaultName(req.LastName),
		Password:         hashed,
		IsActive:         true,
		IsVerified:       false,
		VerificationUUID: uuid.NewString(),
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrUsernameExist
		}
		return nil, err
	}

	// 邮件发送失败不影响注册结果
	body := signupMessage(s.baseURL, user.Username, user.VerificationUUID)
	if err = s.sender.Send(ctx, user.Email, signupSubject, body); err != nil {
		log.WarnContext(ctx, "send signup mail failed", "user_id", user.ID, "err", err)
	}
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(req.Password, user.Password); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			return nil, ErrPasswordIncorrect
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	now := s.now()
	if err = s.userRepo.UpdateUserFields(ctx, user.ID, map[string]any{"last_login": now}); err != nil {
		return nil, err
	}

	token, err := security.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{Token: token, ExpiresAt: now.Add(security.JWTExpirationTime)}, nil
}

// Logout 将 token 签名加入黑名单，直到 token 自然过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		return ErrUnauthorized
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrUnauthorized
	}
	ttl := security.RemainingTTL(claims)
	if ttl <= 0 {
		return nil
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklist+signature, 1, ttl)
}

func (s *UserServiceImpl) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return true, nil
	}
	return redis.Exists(ctx, consts.TokenBlacklist+signature)
}

// GetProfile 邮箱和登录时间只对本人可见
func (s *UserServiceImpl) GetProfile(ctx context.Context, viewerID, userID uint64) (*dto.UserProfileDTO, error) {
	user, err := s.mustGetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &dto.UserProfileDTO{}
	if viewerID == userID {
		profile.UserDTO = *toUserDTO(user)
	} else {
		profile.UserDTO = *toPublicUserDTO(user)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.followSvc.GetFollowerCount(gCtx, userID)
		profile.FollowerCount = count
		return err
	})
	g.Go(func() error {
		count, err := s.followSvc.GetFollowingCount(gCtx, userID)
		profile.FollowingCount = count
		return err
	})
	g.Go(func() error {
		count, err := s.reactionSvc.Count(gCtx, model.KindUser, userID)
		profile.Rating = count
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *UserServiceImpl) GetByUsername(ctx context.Context, username string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toPublicUserDTO(user), nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, actorID, userID uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error) {
	if actorID == 0 {
		return nil, ErrUnauthorized
	}
	user, err := s.mustGetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.OwnerID() != actorID {
		return nil, ErrForbidden
	}

	fields := make(map[string]any)
	if req.Email != nil {
		fields["email"] = strings.TrimSpace(*req.Email)
	}
	if req.FirstName != nil {
		fields["first_name"] = orDefaultName(*req.FirstName)
	}
	if req.LastName != nil {
		fields["last_name"] = orDefaultName(*req.LastName)
	}
	if len(fields) > 0 {
		if err = s.userRepo.UpdateUserFields(ctx, userID, fields); err != nil {
			return nil, err
		}
		if user, err = s.mustGetUser(ctx, userID); err != nil {
			return nil, err
		}
	}
	return toUserDTO(user), nil
}

// Deactivate 账号软删除，只有本人可以操作
func (s *UserServiceImpl) Deactivate(ctx context.Context, actorID, userID uint64) error {
	user, err := s.mustGetUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.policy.Hide(ctx, user, actorID)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, query *dto.UserListQuery, size int) (*dto.PageDTO[dto.UserDTO], error) {
	_, total, err := s.userRepo.ListUsers(ctx, query.IsActive, 0, 0)
	if err != nil {
		return nil, err
	}
	p := util.Paginate(query.Page, total, size)
	users, _, err := s.userRepo.ListUsers(ctx, query.IsActive, p.Size, p.Offset())
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		items = append(items, *toPublicUserDTO(u))
	}
	return newPage(items, p), nil
}

// SendRecovery 最近一次登录 7 天内可恢复，否则提示重新注册
func (s *UserServiceImpl) SendRecovery(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	body := recoveryMessage(s.baseURL, user.Username, user.VerificationUUID, s.withinRecoveryWindow(user))
	return s.sender.Send(ctx, user.Email, recoverySubject, body)
}

// Activate 激活并验证账号，同时更换验证码使链接失效
func (s *UserServiceImpl) Activate(ctx context.Context, verificationUUID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByVerificationUUID(ctx, verificationUUID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrActivationNotFound
	}
	// 已停用的账号只能在恢复期限内重新激活，旧的注册链接同样受限
	if !user.IsActive && !s.withinRecoveryWindow(user) {
		return nil, ErrActivationExpired
	}

	fields := map[string]any{
		"is_active":         true,
		"is_verified":       true,
		"verification_uuid": uuid.NewString(),
	}
	if err = s.userRepo.UpdateUserFields(ctx, user.ID, fields); err != nil {
		return nil, err
	}
	user.IsActive = true
	user.IsVerified = true
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) withinRecoveryWindow(user *model.User) bool {
	days := int(s.now().Sub(user.RecoveryAnchor()) / (24 * time.Hour))
	return days <= consts.RecoveryWindowDays
}

func (s *UserServiceImpl) mustGetUser(ctx context.Context, userID uint64) (*model.User, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func orDefaultName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return consts.DefaultName
	}
	return name
}
