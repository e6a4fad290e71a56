package model

import "time"

type Follow struct {
	FollowerID uint64    `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	AuthorID   uint64    `gorm:"primaryKey;autoIncrement:false;index:idx_follow_author" json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower *User `gorm:"foreignKey:FollowerID;references:ID;constraint:OnDelete:CASCADE" json:"follower,omitempty"`
	Author   *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

func (Follow) TableName() string {
	return "follows"
}
