package dto

// Response 统一返回结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageDTO 页码分页返回
type PageDTO[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func (p *PageDTO[T]) HasPrev() bool { return p.Page > 1 }

func (p *PageDTO[T]) HasNext() bool { return p.Page < p.TotalPages }

func (p *PageDTO[T]) PrevPage() int { return p.Page - 1 }

func (p *PageDTO[T]) NextPage() int { return p.Page + 1 }
