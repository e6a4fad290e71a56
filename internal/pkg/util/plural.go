package util

import "fmt"

const (
	commentOne  = "Комментарий"
	commentFew  = "Комментария"
	commentMany = "Комментариев"
)

// CommentsLabel 按俄语复数规则拼接评论数量
func CommentsLabel(count int64) string {
	return fmt.Sprintf("%d %s", count, russianPlural(count, commentOne, commentFew, commentMany))
}

func russianPlural(n int64, one, few, many string) string {
	if n < 0 {
		n = -n
	}
	mod100 := n % 100
	if mod100 >= 11 && mod100 <= 14 {
		return many
	}
	switch n % 10 {
	case 1:
		return one
	case 2, 3, 4:
		return few
	default:
		return many
	}
}
