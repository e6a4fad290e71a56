package model

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index:idx_post_status_created,priority:1" json:"post_id"`
	AuthorID  uint64    `gorm:"not null;index:idx_comment_author" json:"author_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Status    string    `gorm:"type:varchar(16);not null;default:'published';index:idx_post_status_created,priority:2" json:"status"`
	CreatedAt time.Time `gorm:"index:idx_post_status_created,priority:3" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Post   *Post `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Author *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) Kind() TargetKind { return KindComment }

func (c *Comment) TargetID() uint64 { return c.ID }

func (c *Comment) OwnerID() uint64 { return c.AuthorID }

func (c *Comment) Edited() bool {
	return !c.UpdatedAt.Equal(c.CreatedAt)
}

func (c *Comment) Published() bool {
	return c.Status == StatusPublished
}
