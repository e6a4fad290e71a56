package consts

import "time"

const (
	MimePrefixImage = "image"
)

const (
	// DefaultName 注册时未填写姓名的占位
	DefaultName = "Anonym"
	// SimilarPostsLimit 相似文章最多返回条数
	SimilarPostsLimit = 5
	// RecoveryWindowDays 最后一次登录后可直接恢复账号的天数
	RecoveryWindowDays = 7
)

const (
	ImageMaxWidth    = 1600
	ImageMaxHeight   = 1600
	ImageJPEGQuality = 95
)

const (
	ReactionCountTTL = 10 * time.Minute
)
