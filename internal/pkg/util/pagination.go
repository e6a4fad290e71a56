package util

import "strconv"

// Page 页码分页结果
type Page struct {
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Paginate 解析页码参数：非整数取第一页，越界取最后一页
func Paginate(pageParam string, total int64, size int) Page {
	if size <= 0 {
		size = 1
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	number, err := strconv.Atoi(pageParam)
	switch {
	case err != nil:
		number = 1
	case number < 1 || number > totalPages:
		number = totalPages
	}

	return Page{Number: number, Size: size, Total: total, TotalPages: totalPages}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page) PrevNumber() int {
	return p.Number - 1
}

func (p Page) NextNumber() int {
	return p.Number + 1
}
