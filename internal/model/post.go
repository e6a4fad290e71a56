package model

import (
	"time"
)

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	AuthorID  uint64    `gorm:"not null;index:idx_post_author" json:"author_id"`
	Title     string    `gorm:"type:varchar(250);not null" json:"title"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Status    string    `gorm:"type:varchar(16);not null;default:'published';index:idx_status_created,priority:1" json:"status"`
	CreatedAt time.Time `gorm:"index:idx_status_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	Author *User       `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Tags   []Tag       `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Images []PostImage `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) Kind() TargetKind { return KindPost }

func (p *Post) TargetID() uint64 { return p.ID }

func (p *Post) OwnerID() uint64 { return p.AuthorID }

// Edited 创建后是否被修改过
func (p *Post) Edited() bool {
	return !p.UpdatedAt.Equal(p.CreatedAt)
}

func (p *Post) Published() bool {
	return p.Status == StatusPublished
}
