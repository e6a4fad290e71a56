package model

import (
	"time"
)

type PostImage struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	PostID      uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	ObjectKey   string    `gorm:"type:varchar(512);not null" json:"object_key"`
	ContentType string    `gorm:"type:varchar(64);not null" json:"content_type"`
	Width       int       `gorm:"not null;default:0" json:"width"`
	Height      int       `gorm:"not null;default:0" json:"height"`
	CreatedAt   time.Time `json:"created_at"`
}

func (PostImage) TableName() string {
	return "post_images"
}
