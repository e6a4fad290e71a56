package dto

import "time"

type CommentCreateDTO struct {
	Text string `json:"text" form:"text" binding:"required,max=2000"`
}

type CommentUpdateDTO struct {
	Text string `json:"text" binding:"required,max=2000"`
}

type CommentDTO struct {
	ID        uint64    `json:"id"`
	PostID    uint64    `json:"post_id"`
	AuthorID  uint64    `json:"author_id"`
	Author    *UserDTO  `json:"author,omitempty" copier:"-"`
	Text      string    `json:"text"`
	Status    string    `json:"status"`
	Edited    bool      `json:"edited" copier:"-"`
	LikeCount int64     `json:"like_count" copier:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
