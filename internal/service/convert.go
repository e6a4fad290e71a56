package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/util"

	"github.com/jinzhu/copier"
)

// urlFunc 将对象存储的 key 转换为可访问的地址
type urlFunc func(objectKey string) string

func newPage[T any](items []T, p util.Page) *dto.PageDTO[T] {
	if items == nil {
		items = []T{}
	}
	return &dto.PageDTO[T]{
		Items:      items,
		Page:       p.Number,
		PageSize:   p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func toUserDTO(user *model.User) *dto.UserDTO {
	if user == nil {
		return nil
	}
	out := &dto.UserDTO{}
	_ = copier.Copy(out, user)
	return out
}

// toPublicUserDTO 展示给他人时隐藏邮箱与登录时间
func toPublicUserDTO(user *model.User) *dto.UserDTO {
	out := toUserDTO(user)
	if out != nil {
		out.Email = ""
		out.LastLogin = nil
	}
	return out
}

func toPostDTO(post *model.Post, imageURL urlFunc) dto.PostDTO {
	out := dto.PostDTO{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Author:    toPublicUserDTO(post.Author),
		Title:     post.Title,
		Text:      post.Text,
		Status:    post.Status,
		Edited:    post.Edited(),
		Tags:      make([]dto.TagDTO, 0, len(post.Tags)),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	for _, tag := range post.Tags {
		out.Tags = append(out.Tags, dto.TagDTO{Name: tag.Name, Slug: tag.Slug})
	}
	if imageURL != nil {
		for _, img := range post.Images {
			out.Images = append(out.Images, toImageDTO(&img, imageURL))
		}
	}
	return out
}

func toPostDTOs(posts []*model.Post) []dto.PostDTO {
	out := make([]dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostDTO(p, nil))
	}
	return out
}

func toImageDTO(img *model.PostImage, imageURL urlFunc) dto.ImageDTO {
	return dto.ImageDTO{
		ID:          img.ID,
		URL:         imageURL(img.ObjectKey),
		ContentType: img.ContentType,
		Width:       img.Width,
		Height:      img.Height,
	}
}

func toCommentDTO(comment *model.Comment, likes int64) dto.CommentDTO {
	out := dto.CommentDTO{}
	_ = copier.Copy(&out, comment)
	out.Author = toPublicUserDTO(comment.Author)
	out.Edited = comment.Edited()
	out.LikeCount = likes
	return out
}
