package dto

import "time"

type CreatePostDTO struct {
	Title string   `json:"title" form:"title" binding:"required,max=250"`
	Text  string   `json:"text" form:"text" binding:"required"`
	Tags  []string `json:"tags" form:"tags" binding:"max=20,dive,max=100"`
}

type UpdatePostDTO struct {
	Title *string   `json:"title" binding:"omitempty,min=1,max=250"`
	Text  *string   `json:"text" binding:"omitempty,min=1"`
	Tags  *[]string `json:"tags" binding:"omitempty,max=20,dive,max=100"`
}

type PostListQuery struct {
	Author string `form:"author"`
	Q      string `form:"q"`
	Page   string `form:"page"`
}

type TagDTO struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ImageDTO struct {
	ID          uint64 `json:"id"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

type PostDTO struct {
	ID        uint64     `json:"id"`
	AuthorID  uint64     `json:"author_id"`
	Author    *UserDTO   `json:"author,omitempty"`
	Title     string     `json:"title"`
	Text      string     `json:"text"`
	Status    string     `json:"status"`
	Edited    bool       `json:"edited"`
	Tags      []TagDTO   `json:"tags"`
	Images    []ImageDTO `json:"images,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// PostDetailDTO 文章详情及其互动数据
type PostDetailDTO struct {
	PostDTO
	LikeCount     int64        `json:"like_count"`
	CommentCount  int64        `json:"comment_count"`
	CommentsLabel string       `json:"comments_label"`
	Comments      []CommentDTO `json:"comments"`
	Similar       []PostDTO    `json:"similar"`
}

type PostRankDTO struct {
	PostDTO
	Likes int64 `json:"likes"`
}
