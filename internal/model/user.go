package model

import (
	"time"
)

type User struct {
	ID               uint64     `gorm:"primaryKey" json:"id"`
	Username         string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_username" json:"username"`
	Email            string     `gorm:"type:varchar(254);not null;index:idx_email" json:"email"`
	FirstName        string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName         string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Password         string     `gorm:"type:varchar(255);not null" json:"-"`
	IsActive         bool       `gorm:"not null" json:"is_active"`
	IsVerified       bool       `gorm:"not null" json:"is_verified"`
	VerificationUUID string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_verification_uuid" json:"-"`
	LastLogin        *time.Time `json:"last_login"`
	CreatedAt        time.Time  `gorm:"index:idx_user_created" json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) Kind() TargetKind { return KindUser }

func (u *User) TargetID() uint64 { return u.ID }

// OwnerID 账号的所有者就是自己
func (u *User) OwnerID() uint64 { return u.ID }

// RecoveryAnchor 计算恢复期限的起点，从未登录过时取注册时间
func (u *User) RecoveryAnchor() time.Time {
	if u.LastLogin != nil {
		return *u.LastLogin
	}
	return u.CreatedAt
}
