package dto

import "time"

type RegisterDTO struct {
	Username  string `json:"username" form:"username" binding:"required,min=3,max=100"`
	Email     string `json:"email" form:"email" binding:"required,email,max=254"`
	Password  string `json:"password" form:"password" binding:"required,min=6,max=128"`
	FirstName string `json:"first_name" form:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" form:"last_name" binding:"max=100"`
}

type CredentialDTO struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type TokenDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UpdateProfileDTO struct {
	Email     *string `json:"email" binding:"omitempty,email,max=254"`
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
}

type RecoveryDTO struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

type UserListQuery struct {
	IsActive *bool  `form:"is_active"`
	Page     string `form:"page"`
}

// UserDTO 对外展示的用户信息，不含密码与验证码
type UserDTO struct {
	ID         uint64     `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email,omitempty"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	IsActive   bool       `json:"is_active"`
	IsVerified bool       `json:"is_verified"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// UserProfileDTO 个人主页
type UserProfileDTO struct {
	UserDTO
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	Rating         int64 `json:"rating"`
}

type AuthorRankDTO struct {
	UserDTO
	Rating int64 `json:"rating"`
}

type FollowDTO struct {
	User      UserDTO   `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
