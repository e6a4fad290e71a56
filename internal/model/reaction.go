package model

import (
	"time"
)

// Reaction 点赞与评分共用一张表，(user_id, target_kind, target_id) 唯一
type Reaction struct {
	UserID     uint64     `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	TargetKind TargetKind `gorm:"primaryKey;type:varchar(16);index:idx_target,priority:1" json:"target_kind"`
	TargetID   uint64     `gorm:"primaryKey;autoIncrement:false;index:idx_target,priority:2" json:"target_id"`
	CreatedAt  time.Time  `json:"created_at"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Reaction) TableName() string {
	return "reactions"
}
